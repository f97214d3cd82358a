package handler

import (
	"encoding/json"
	"net/http"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/service"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/response"
)

// AnalyzeHandler handles single-item analysis requests.
type AnalyzeHandler struct {
	analyzeService *service.AnalyzeService
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzeService *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
	}
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Title              string  `json:"title"`
	BuyPrice           float64 `json:"buy_price"`
	EstimatedSellPrice float64 `json:"estimated_sell_price"`
	URL                string  `json:"url,omitempty"`
	ImageURL           string  `json:"image_url,omitempty"`
	Location           string  `json:"location,omitempty"`
}

// AnalyzeResponse is the wire shape for a successful analysis.
type AnalyzeResponse struct {
	Success  bool            `json:"success"`
	Analysis *model.Analysis `json:"analysis"`
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	analysis, err := h.analyzeService.Analyze(service.AnalyzeInput{
		Title:              req.Title,
		BuyPrice:           req.BuyPrice,
		EstimatedSellPrice: req.EstimatedSellPrice,
		URL:                req.URL,
		ImageURL:           req.ImageURL,
		Location:           req.Location,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, AnalyzeResponse{
		Success:  true,
		Analysis: analysis,
	})
}
