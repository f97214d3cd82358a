package handler

import (
	"encoding/json"
	"net/http"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/service"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/response"
)

// SearchHandler handles arbitrage search requests.
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchRequest is the body of POST /api/search-arbitrage.
type SearchRequest struct {
	Keywords   []string `json:"keywords"`
	MaxResults int      `json:"max_results"`
}

// SearchResponse is the wire shape the frontend renders. Field names are
// load-bearing.
type SearchResponse struct {
	Success            bool                `json:"success"`
	TotalOpportunities int                 `json:"total_opportunities"`
	Opportunities      []model.Opportunity `json:"opportunities"`
	PlatformsSearched  model.SearchStats   `json:"platforms_searched"`
}

// SearchArbitrage handles POST /api/search-arbitrage
func (h *SearchHandler) SearchArbitrage(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	result, err := h.searchService.Search(r.Context(), req.Keywords, req.MaxResults)
	if err != nil {
		response.Error(w, err)
		return
	}

	// Never null on the wire, even with no matches
	if result.Opportunities == nil {
		result.Opportunities = []model.Opportunity{}
	}

	response.OK(w, SearchResponse{
		Success:            true,
		TotalOpportunities: result.TotalOpportunities,
		Opportunities:      result.Opportunities,
		PlatformsSearched:  result.PlatformsSearched,
	})
}
