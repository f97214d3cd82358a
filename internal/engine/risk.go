package engine

import "github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"

// Price bands: cheap items move fast, expensive ones sit around.
const (
	bandMidPrice  = 50.0
	bandHighPrice = 200.0
)

// liquidityDays is the base expected time to sell per platform, for the lowest
// price band. High-traffic generalist platforms turn items over faster than
// auction houses.
var liquidityDays = map[model.Platform]int{
	model.PlatformWallapop: 7,
	model.PlatformVinted:   10,
	model.PlatformEbay:     14,
	model.PlatformCatawiki: 21,
}

// noSaleBase is the base probability (percent) that an item never sells.
var noSaleBase = map[model.Platform]float64{
	model.PlatformWallapop: 10,
	model.PlatformVinted:   12,
	model.PlatformEbay:     8,
	model.PlatformCatawiki: 18,
}

// returnBase is the base probability (percent) of a post-sale return.
// Buyer protection platforms see more returns.
var returnBase = map[model.Platform]float64{
	model.PlatformWallapop: 5,
	model.PlatformVinted:   6,
	model.PlatformEbay:     9,
	model.PlatformCatawiki: 4,
}

// priceBand buckets a sell price into 0 (cheap), 1 (mid) or 2 (high).
func priceBand(sellPrice float64) int {
	switch {
	case sellPrice >= bandHighPrice:
		return 2
	case sellPrice >= bandMidPrice:
		return 1
	default:
		return 0
	}
}

// AssessRisk estimates sale-time and risk percentages for reselling at the
// given price on the given platform. Deterministic lookup: platform liquidity
// scaled by price band. All outputs are non-negative, percentages in [0,100].
func AssessRisk(sellPlatform model.Platform, sellPrice float64) model.RiskAdjusted {
	band := priceBand(sellPrice)

	days, ok := liquidityDays[sellPlatform]
	if !ok {
		days = 14
	}

	return model.RiskAdjusted{
		ExpectedDaysToSell: days * (1 + band),
		NoSaleRisk:         clampPct(noSaleBase[sellPlatform] + 10*float64(band)),
		ReturnRisk:         clampPct(returnBase[sellPlatform] + 3*float64(band)),
	}
}

// RiskCost turns the risk estimates into an imputed monetary cost on the
// invested capital: an expected-loss term weighted at 25% of the no-sale
// probability plus a 10%/year opportunity cost for the expected holding time.
// Monotonic: more risk or a longer hold always costs more.
func RiskCost(investment float64, risk model.RiskAdjusted) float64 {
	if investment <= 0 {
		return 0
	}
	expectedLoss := investment * (risk.NoSaleRisk / 100.0) * 0.25
	holdingCost := investment * (float64(risk.ExpectedDaysToSell) / 365.0) * 0.10
	return round2(expectedLoss + holdingCost)
}

func clampPct(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
