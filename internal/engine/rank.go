package engine

import (
	"sort"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

// Recommendation tiers by score.
const (
	scoreStrongBuy = 65.0
	scoreModerate  = 50.0
)

// Score composes a bounded 0-100 rating: ROI carries the primary weight,
// liquidity (expected sale time) and safety (no-sale plus return risk) the
// secondary weight. Higher ROI with lower risk always scores higher.
func Score(roiPercent float64, risk model.RiskAdjusted) float64 {
	roiComponent := clamp01(roiPercent/50.0) * 70.0
	liquidity := clamp01(1.0-float64(risk.ExpectedDaysToSell)/60.0) * 15.0
	safety := clamp01(1.0-(risk.NoSaleRisk+risk.ReturnRisk)/100.0) * 15.0
	return round2(roiComponent + liquidity + safety)
}

// Recommendation maps a score to its advice tier.
func Recommendation(score float64) string {
	switch {
	case score >= scoreStrongBuy:
		return "Compra fuerte: ROI alto con riesgo controlado"
	case score >= scoreModerate:
		return "Oportunidad moderada: margen aceptable, revisa los costes"
	default:
		return "Margen justo: vigila el riesgo antes de comprar"
	}
}

// Rank turns matched pairs into the final ordered opportunity list. Pairs
// whose net profit after all costs is not positive are not opportunities and
// are dropped. Order: score descending, ties broken by net profit descending.
func (t FeeTable) Rank(pairs []Pair) []model.Opportunity {
	opportunities := make([]model.Opportunity, 0, len(pairs))

	for _, pair := range pairs {
		risk := AssessRisk(pair.Sell.Platform, pair.Sell.Price)
		costs := t.Compute(pair.Buy.Price, pair.Sell.Price, pair.Buy.Platform, pair.Sell.Platform, risk)
		netProfit := NetProfit(pair.Sell.Price, costs)
		if netProfit <= 0 {
			continue
		}

		roi := ROIPercent(netProfit, costs)
		score := Score(roi, risk)

		opportunities = append(opportunities, model.Opportunity{
			BuyPlatform:     pair.Buy.Platform,
			BuyTitle:        pair.Buy.Title,
			BuyPrice:        round2(pair.Buy.Price),
			BuyURL:          pair.Buy.URL,
			SellPlatform:    pair.Sell.Platform,
			SellTitle:       pair.Sell.Title,
			SellPrice:       round2(pair.Sell.Price),
			SellURL:         pair.Sell.URL,
			NetProfit:       netProfit,
			ROIPercent:      roi,
			Score:           score,
			Recommendation:  Recommendation(score),
			BreakevenPrice:  t.Breakeven(costs.TotalInvestment, pair.Sell.Platform, costs.RiskCost),
			RiskAdjusted:    risk,
			TotalInvestment: costs.TotalInvestment,
			CostsBreakdown:  costs,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		if opportunities[i].Score != opportunities[j].Score {
			return opportunities[i].Score > opportunities[j].Score
		}
		return opportunities[i].NetProfit > opportunities[j].NetProfit
	})

	return opportunities
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
