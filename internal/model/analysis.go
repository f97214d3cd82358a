package model

// Analysis is the single-item counterpart of Opportunity: one listing with a
// user-supplied buy price and estimated resale price, no cross-platform pairing.
type Analysis struct {
	Title              string        `json:"title"`
	BuyPrice           float64       `json:"buy_price"`
	EstimatedSellPrice float64       `json:"estimated_sell_price"`
	URL                string        `json:"url,omitempty"`
	ImageURL           string        `json:"image_url,omitempty"`
	Location           string        `json:"location,omitempty"`
	NetProfit          float64       `json:"net_profit"`
	ROIPercent         float64       `json:"roi_percent"`
	Score              float64       `json:"score"`
	Recommendation     string        `json:"recommendation"`
	BreakevenPrice     float64       `json:"breakeven_price"`
	RiskAdjusted       RiskAdjusted  `json:"risk_adjusted"`
	TotalInvestment    float64       `json:"total_investment"`
	CostsBreakdown     CostBreakdown `json:"costs_breakdown"`
}
