package engine

import (
	"strings"
	"testing"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

func TestScoreBounds(t *testing.T) {
	noRisk := model.RiskAdjusted{}
	maxRisk := model.RiskAdjusted{ExpectedDaysToSell: 365, NoSaleRisk: 100, ReturnRisk: 100}

	if got := Score(1000, noRisk); got != 100 {
		t.Errorf("best-case score = %.2f, want 100", got)
	}
	if got := Score(-50, maxRisk); got != 0 {
		t.Errorf("worst-case score = %.2f, want 0", got)
	}
	for _, roi := range []float64{-10, 0, 5, 25, 50, 200} {
		if got := Score(roi, maxRisk); got < 0 || got > 100 {
			t.Errorf("Score(%.0f) = %.2f out of [0,100]", roi, got)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	risk := model.RiskAdjusted{ExpectedDaysToSell: 14, NoSaleRisk: 8, ReturnRisk: 9}

	if Score(40, risk) <= Score(20, risk) {
		t.Error("higher ROI at equal risk must score higher")
	}

	riskier := model.RiskAdjusted{ExpectedDaysToSell: 42, NoSaleRisk: 28, ReturnRisk: 15}
	if Score(20, risk) <= Score(20, riskier) {
		t.Error("lower risk at equal ROI must score higher")
	}
}

func TestRecommendationTiers(t *testing.T) {
	strong := Recommendation(65)
	moderate := Recommendation(50)
	weak := Recommendation(49.99)

	if !strings.HasPrefix(strong, "Compra fuerte") {
		t.Errorf("tier at 65: %q", strong)
	}
	if !strings.HasPrefix(moderate, "Oportunidad moderada") {
		t.Errorf("tier at 50: %q", moderate)
	}
	if !strings.HasPrefix(weak, "Margen justo") {
		t.Errorf("tier below 50: %q", weak)
	}
	if Recommendation(64.99) != moderate {
		t.Error("64.99 must fall in the moderate tier")
	}
	if Recommendation(100) != strong {
		t.Error("100 must fall in the strong tier")
	}
}

func TestRankComputedFields(t *testing.T) {
	pairs := []Pair{{
		Buy:  model.Listing{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 30, URL: "https://w/1"},
		Sell: model.Listing{Platform: model.PlatformEbay, Title: "gameboy color", Price: 65, URL: "https://e/1"},
	}}

	opps := DefaultFeeTable().Rank(pairs)
	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}
	o := opps[0]

	if o.TotalInvestment != 38.50 {
		t.Errorf("total_investment = %.2f, want 38.50", o.TotalInvestment)
	}
	if o.NetProfit != 5.60 {
		t.Errorf("net_profit = %.2f, want 5.60", o.NetProfit)
	}
	if o.ROIPercent != 14.55 {
		t.Errorf("roi_percent = %.2f, want 14.55", o.ROIPercent)
	}
	if o.Score != 38.87 {
		t.Errorf("score = %.2f, want 38.87", o.Score)
	}
	if o.RiskAdjusted.ExpectedDaysToSell != 28 {
		t.Errorf("expected_days_to_sell = %d, want 28", o.RiskAdjusted.ExpectedDaysToSell)
	}
	if o.Recommendation != Recommendation(o.Score) {
		t.Errorf("recommendation %q does not match score %.2f", o.Recommendation, o.Score)
	}
	if o.BreakevenPrice <= 0 || o.BreakevenPrice >= 65 {
		t.Errorf("breakeven_price = %.2f, want between 0 and the sell price", o.BreakevenPrice)
	}
}

func TestRankDropsUnprofitablePairs(t *testing.T) {
	pairs := []Pair{{
		// sell barely above buy: fees eat the margin
		Buy:  model.Listing{Platform: model.PlatformWallapop, Title: "gameboy", Price: 30},
		Sell: model.Listing{Platform: model.PlatformEbay, Title: "gameboy", Price: 37},
	}}

	if opps := DefaultFeeTable().Rank(pairs); len(opps) != 0 {
		t.Errorf("unprofitable pair produced %d opportunities, want 0", len(opps))
	}
}

func TestRankOrdering(t *testing.T) {
	pairs := []Pair{
		{
			Buy:  model.Listing{Platform: model.PlatformWallapop, Title: "gameboy", Price: 30},
			Sell: model.Listing{Platform: model.PlatformEbay, Title: "gameboy", Price: 65},
		},
		{
			Buy:  model.Listing{Platform: model.PlatformWallapop, Title: "tamagotchi", Price: 10},
			Sell: model.Listing{Platform: model.PlatformEbay, Title: "tamagotchi", Price: 45},
		},
	}

	opps := DefaultFeeTable().Rank(pairs)
	if len(opps) != 2 {
		t.Fatalf("got %d opportunities, want 2", len(opps))
	}
	for i := 1; i < len(opps); i++ {
		prev, cur := opps[i-1], opps[i]
		if prev.Score < cur.Score {
			t.Errorf("opportunities not sorted by score: %.2f before %.2f", prev.Score, cur.Score)
		}
		if prev.Score == cur.Score && prev.NetProfit < cur.NetProfit {
			t.Error("tie on score not broken by net profit")
		}
	}
	if opps[0].BuyTitle != "tamagotchi" {
		t.Errorf("highest ROI pair should rank first, got %q", opps[0].BuyTitle)
	}
}
