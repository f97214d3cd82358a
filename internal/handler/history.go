package handler

import (
	"net/http"
	"strconv"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/service"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/response"
)

const defaultHistoryLimit = 20

// HistoryHandler exposes the search history.
type HistoryHandler struct {
	searchService *service.SearchService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(searchService *service.SearchService) *HistoryHandler {
	return &HistoryHandler{
		searchService: searchService,
	}
}

// HistoryResponse is the wire shape of the search history.
type HistoryResponse struct {
	Success  bool                 `json:"success"`
	Searches []model.SearchRecord `json:"searches"`
}

// RecentSearches handles GET /api/search-history
func (h *HistoryHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	searches, err := h.searchService.RecentSearches(r.Context(), limit)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, HistoryResponse{
		Success:  true,
		Searches: searches,
	})
}
