package engine

import (
	"math"
	"testing"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

// scenarioTable is the reference fee setup: buy side 5% commission + 3€
// shipping, sell side 8% commission + 4€ shipping + 2.5% payment fee,
// 19% taxes, 1€ packaging.
func scenarioTable() FeeTable {
	return FeeTable{
		Platforms: map[model.Platform]FeeSchedule{
			"shopA": {BuyCommissionPct: 0.05, Shipping: 3.0},
			"shopB": {SellCommissionPct: 0.08, Shipping: 4.0},
		},
		PaymentFeePct: 0.025,
		Packaging:     1.0,
		TaxRate:       0.19,
	}
}

func TestComputeReferenceScenario(t *testing.T) {
	table := scenarioTable()
	costs := table.Compute(30, 60, "shopA", "shopB", model.RiskAdjusted{})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"buy_price", costs.BuyPrice, 30.00},
		{"buy_commission", costs.BuyCommission, 1.50},
		{"buy_shipping", costs.BuyShipping, 3.00},
		{"sell_commission", costs.SellCommission, 4.80},
		{"sell_shipping", costs.SellShipping, 4.00},
		{"payment_fee", costs.PaymentFee, 1.50},
		{"packaging", costs.Packaging, 1.00},
		{"taxes", costs.Taxes, 2.70},
		{"risk_cost", costs.RiskCost, 0.00},
		{"total_investment", costs.TotalInvestment, 35.50},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %.2f, want %.2f", c.name, c.got, c.want)
		}
	}

	net := NetProfit(60, costs)
	if net != 11.50 {
		t.Errorf("net_profit: got %.2f, want 11.50", net)
	}
	if roi := ROIPercent(net, costs); roi != 32.39 {
		t.Errorf("roi_percent: got %.2f, want 32.39", roi)
	}
}

func TestComputeInvestmentInvariant(t *testing.T) {
	table := DefaultFeeTable()
	prices := []struct{ buy, sell float64 }{
		{10, 25}, {30, 60}, {99.99, 250.50}, {1, 2}, {450, 900},
	}

	for _, p := range prices {
		for _, buyPlat := range model.AllPlatforms {
			for _, sellPlat := range model.AllPlatforms {
				costs := table.Compute(p.buy, p.sell, buyPlat, sellPlat, model.RiskAdjusted{})

				wantInvestment := costs.BuyPrice + costs.BuyCommission + costs.BuyShipping + costs.Packaging
				if math.Abs(costs.TotalInvestment-wantInvestment) > 0.005 {
					t.Errorf("%s->%s buy=%.2f: total_investment %.2f != %.2f",
						buyPlat, sellPlat, p.buy, costs.TotalInvestment, wantInvestment)
				}

				wantNet := p.sell - costs.SellCommission - costs.SellShipping - costs.PaymentFee -
					costs.Taxes - costs.RiskCost - costs.TotalInvestment
				if got := NetProfit(p.sell, costs); math.Abs(got-wantNet) > 0.005 {
					t.Errorf("%s->%s: net_profit %.2f != %.2f", buyPlat, sellPlat, got, wantNet)
				}
			}
		}
	}
}

func TestComputeTaxesNeverNegative(t *testing.T) {
	table := DefaultFeeTable()

	// selling below cost: a loss is not taxed
	costs := table.Compute(50, 55, model.PlatformWallapop, model.PlatformEbay, model.RiskAdjusted{})
	if costs.Taxes != 0 {
		t.Errorf("taxes on a loss: got %.2f, want 0", costs.Taxes)
	}
	if net := NetProfit(55, costs); net >= 0 {
		t.Errorf("expected a loss, got net_profit %.2f", net)
	}
}

func TestROIUndefinedOnZeroInvestment(t *testing.T) {
	costs := model.CostBreakdown{TotalInvestment: 0}
	if got := ROIPercent(10, costs); got != 0 {
		t.Errorf("roi with zero investment: got %.2f, want 0", got)
	}
}

func TestBreakevenZeroProfit(t *testing.T) {
	table := DefaultFeeTable()
	risk := AssessRisk(model.PlatformEbay, 60)
	costs := table.Compute(30, 60, model.PlatformWallapop, model.PlatformEbay, risk)

	be := table.Breakeven(costs.TotalInvestment, model.PlatformEbay, costs.RiskCost)

	// net profit at the breakeven price must be zero (within rounding)
	sell := table.Schedule(model.PlatformEbay)
	pre := be*(1-sell.SellCommissionPct-table.PaymentFeePct) - sell.Shipping - costs.TotalInvestment
	net := pre - table.TaxRate*pre - costs.RiskCost
	if math.Abs(net) > 0.02 {
		t.Errorf("net profit at breakeven %.2f: got %.4f, want 0", be, net)
	}
}

func TestBreakevenSentinel(t *testing.T) {
	table := FeeTable{
		Platforms: map[model.Platform]FeeSchedule{
			"greedy": {SellCommissionPct: 0.95},
		},
		PaymentFeePct: 0.03,
		TaxRate:       0.19,
	}
	if got := table.Breakeven(100, "greedy", 0); got != breakevenSentinel {
		t.Errorf("breakeven with confiscatory fees: got %.2f, want sentinel", got)
	}
}
