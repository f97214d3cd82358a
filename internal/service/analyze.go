package service

import (
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/engine"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
)

// AnalyzeInput is a manually entered item: the user already knows the buy
// price and estimates the resale price.
type AnalyzeInput struct {
	Title              string
	BuyPrice           float64
	EstimatedSellPrice float64
	URL                string
	ImageURL           string
	Location           string
}

// AnalyzeService runs the cost/risk pipeline for a single item, skipping
// matching and ranking. Manual analysis assumes the standard route: buy on
// wallapop, resell on ebay.
type AnalyzeService struct {
	fees         engine.FeeTable
	buyPlatform  model.Platform
	sellPlatform model.Platform
}

// NewAnalyzeService creates the analyzer with the given fee table.
func NewAnalyzeService(fees engine.FeeTable) *AnalyzeService {
	return &AnalyzeService{
		fees:         fees,
		buyPlatform:  model.PlatformWallapop,
		sellPlatform: model.PlatformEbay,
	}
}

// Analyze validates the input and computes the full cost, risk and score
// picture. Pure computation: identical inputs produce identical analyses.
func (s *AnalyzeService) Analyze(in AnalyzeInput) (*model.Analysis, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apierror.ValidationError("title is required")
	}
	if in.BuyPrice <= 0 {
		return nil, apierror.ValidationError("buy_price must be greater than zero")
	}
	if in.EstimatedSellPrice <= 0 {
		return nil, apierror.ValidationError("estimated_sell_price must be greater than zero")
	}

	risk := engine.AssessRisk(s.sellPlatform, in.EstimatedSellPrice)
	costs := s.fees.Compute(in.BuyPrice, in.EstimatedSellPrice, s.buyPlatform, s.sellPlatform, risk)
	netProfit := engine.NetProfit(in.EstimatedSellPrice, costs)
	roi := engine.ROIPercent(netProfit, costs)
	score := engine.Score(roi, risk)

	return &model.Analysis{
		Title:              title,
		BuyPrice:           costs.BuyPrice,
		EstimatedSellPrice: in.EstimatedSellPrice,
		URL:                in.URL,
		ImageURL:           in.ImageURL,
		Location:           in.Location,
		NetProfit:          netProfit,
		ROIPercent:         roi,
		Score:              score,
		Recommendation:     engine.Recommendation(score),
		BreakevenPrice:     s.fees.Breakeven(costs.TotalInvestment, s.sellPlatform, costs.RiskCost),
		RiskAdjusted:       risk,
		TotalInvestment:    costs.TotalInvestment,
		CostsBreakdown:     costs,
	}, nil
}
