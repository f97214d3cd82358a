package model

// CostBreakdown itemizes every cost of a buy/resell cycle, in the search
// currency. All line items are >= 0; only the derived net figures may go
// negative.
type CostBreakdown struct {
	BuyPrice        float64 `json:"buy_price"`
	BuyCommission   float64 `json:"buy_commission"`
	BuyShipping     float64 `json:"buy_shipping"`
	SellCommission  float64 `json:"sell_commission"`
	SellShipping    float64 `json:"sell_shipping"`
	PaymentFee      float64 `json:"payment_fee"`
	Packaging       float64 `json:"packaging"`
	Taxes           float64 `json:"taxes"`
	RiskCost        float64 `json:"risk_cost"`
	TotalInvestment float64 `json:"total_investment"`
}

// RiskAdjusted holds the deterministic risk estimates for a resale.
type RiskAdjusted struct {
	ExpectedDaysToSell int     `json:"expected_days_to_sell"`
	NoSaleRisk         float64 `json:"no_sale_risk"`
	ReturnRisk         float64 `json:"return_risk"`
}

// Opportunity pairs a buy listing with a sell listing on a different
// platform, with the full cost and risk picture. Created by the ranker,
// never mutated afterwards, discarded at the end of the request.
type Opportunity struct {
	BuyPlatform     Platform      `json:"buy_platform"`
	BuyTitle        string        `json:"buy_title"`
	BuyPrice        float64       `json:"buy_price"`
	BuyURL          string        `json:"buy_url"`
	SellPlatform    Platform      `json:"sell_platform"`
	SellTitle       string        `json:"sell_title"`
	SellPrice       float64       `json:"sell_price"`
	SellURL         string        `json:"sell_url"`
	NetProfit       float64       `json:"net_profit"`
	ROIPercent      float64       `json:"roi_percent"`
	Score           float64       `json:"score"`
	Recommendation  string        `json:"recommendation"`
	BreakevenPrice  float64       `json:"breakeven_price"`
	RiskAdjusted    RiskAdjusted  `json:"risk_adjusted"`
	TotalInvestment float64       `json:"total_investment"`
	CostsBreakdown  CostBreakdown `json:"costs_breakdown"`
}

// SearchStats maps every attempted platform to its listing count.
// Failed or timed-out platforms appear with a count of 0.
type SearchStats map[Platform]int

// SearchResult is what one arbitrage search produces.
type SearchResult struct {
	TotalOpportunities int           `json:"total_opportunities"`
	Opportunities      []Opportunity `json:"opportunities"`
	PlatformsSearched  SearchStats   `json:"platforms_searched"`
}
