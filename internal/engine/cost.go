package engine

import (
	"math"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

// breakevenSentinel is returned when the sell-side percentage costs eat the
// whole price and no finite breakeven exists.
const breakevenSentinel = 999999.0

// Compute builds the full cost breakdown for buying on one platform and
// reselling on another. Pure and deterministic: identical inputs always
// produce an identical breakdown.
//
// Invariants:
//
//	total_investment = buy_price + buy_commission + buy_shipping + packaging
//	net_profit = sell_price - sell_commission - sell_shipping - payment_fee
//	             - taxes - risk_cost - total_investment
//
// Taxes apply to the pre-risk profit and are floored at zero: a loss is not
// taxed. The risk cost is a terminal line item supplied by the risk model.
func (t FeeTable) Compute(buyPrice, sellPrice float64, buyPlatform, sellPlatform model.Platform, risk model.RiskAdjusted) model.CostBreakdown {
	buy := t.Schedule(buyPlatform)
	sell := t.Schedule(sellPlatform)

	buyCommission := round2(buyPrice * buy.BuyCommissionPct)
	buyShipping := round2(buy.Shipping)
	sellCommission := round2(sellPrice * sell.SellCommissionPct)
	sellShipping := round2(sell.Shipping)
	paymentFee := round2(sellPrice * t.PaymentFeePct)
	packaging := round2(t.Packaging)

	totalInvestment := round2(buyPrice + buyCommission + buyShipping + packaging)

	preTax := sellPrice - sellCommission - sellShipping - paymentFee - totalInvestment
	taxes := 0.0
	if preTax > 0 {
		taxes = round2(preTax * t.TaxRate)
	}

	riskCost := RiskCost(totalInvestment, risk)

	return model.CostBreakdown{
		BuyPrice:        round2(buyPrice),
		BuyCommission:   buyCommission,
		BuyShipping:     buyShipping,
		SellCommission:  sellCommission,
		SellShipping:    sellShipping,
		PaymentFee:      paymentFee,
		Packaging:       packaging,
		Taxes:           taxes,
		RiskCost:        riskCost,
		TotalInvestment: totalInvestment,
	}
}

// NetProfit derives the net profit of a sale from its breakdown.
func NetProfit(sellPrice float64, c model.CostBreakdown) float64 {
	return round2(sellPrice - c.SellCommission - c.SellShipping - c.PaymentFee -
		c.Taxes - c.RiskCost - c.TotalInvestment)
}

// ROIPercent is the net profit as a percentage of the capital at risk.
// Undefined (reported as 0) when nothing was invested.
func ROIPercent(netProfit float64, c model.CostBreakdown) float64 {
	if c.TotalInvestment <= 0 {
		return 0
	}
	return round2(100 * netProfit / c.TotalInvestment)
}

// Breakeven solves, in closed form, for the sell price at which net profit is
// exactly zero given the sell-side fee structure and a fixed risk cost:
//
//	sell·(1 - sellPct - payPct) - shipping - investment = riskCost / (1 - taxRate)
//
// When percentage costs leave less than 5% of the price, no realistic
// breakeven exists and a sentinel is returned.
func (t FeeTable) Breakeven(totalInvestment float64, sellPlatform model.Platform, riskCost float64) float64 {
	sell := t.Schedule(sellPlatform)

	denom := 1.0 - sell.SellCommissionPct - t.PaymentFeePct
	if denom <= 0.05 {
		return breakevenSentinel
	}

	preTax := riskCost
	if t.TaxRate < 1 {
		preTax = riskCost / (1.0 - t.TaxRate)
	}

	return round2((totalInvestment + sell.Shipping + preTax) / denom)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
