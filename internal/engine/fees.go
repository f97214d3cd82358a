package engine

import "github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"

// FeeSchedule holds the cost structure of one marketplace. Commission rates
// are fractions (0.05 = 5%), shipping is a flat amount in the search currency.
type FeeSchedule struct {
	BuyCommissionPct  float64
	SellCommissionPct float64
	Shipping          float64
}

// FeeTable maps every platform to its fee schedule plus the marketplace-wide
// cost parameters. This is configuration data, not code: policy changes load
// different values without touching the cost model.
type FeeTable struct {
	Platforms     map[model.Platform]FeeSchedule
	PaymentFeePct float64 // payment processing, charged on the sell price
	Packaging     float64 // flat packaging cost per item
	TaxRate       float64 // applied to pre-risk profit, floored at zero
}

// DefaultFeeTable returns the fee values observed in production.
func DefaultFeeTable() FeeTable {
	return FeeTable{
		Platforms: map[model.Platform]FeeSchedule{
			model.PlatformWallapop: {BuyCommissionPct: 0.05, SellCommissionPct: 0.05, Shipping: 5.0},
			model.PlatformEbay:     {BuyCommissionPct: 0.0, SellCommissionPct: 0.125, Shipping: 7.0},
			model.PlatformVinted:   {BuyCommissionPct: 0.0, SellCommissionPct: 0.05, Shipping: 6.0},
			model.PlatformCatawiki: {BuyCommissionPct: 0.09, SellCommissionPct: 0.09, Shipping: 8.0},
		},
		PaymentFeePct: 0.03,
		Packaging:     2.0,
		TaxRate:       0.19,
	}
}

// Schedule returns the fee schedule for a platform, or a zero schedule for
// platforms without one configured.
func (t FeeTable) Schedule(p model.Platform) FeeSchedule {
	return t.Platforms[p]
}
