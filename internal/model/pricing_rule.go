package model

import "time"

// Pricing tier labels stored on rules.
const (
	TierLabel1 = "tier1"
	TierLabel2 = "tier2"
	TierLabel3 = "tier3"
)

// PricingRule is one versioned row of the per-city rate table. At most one
// active rule per city is open (EffectiveTo == nil); upserts close the open
// rule before inserting the replacement.
type PricingRule struct {
	ID   string
	City string
	Tier string

	// Raw rates. Revenue is computed on these directly; Multiplier is
	// reporting metadata describing how the rates relate to the tier
	// baseline.
	PricePerView float64
	PricePerLike float64
	Multiplier   float64

	Active        bool
	EffectiveFrom time.Time
	EffectiveTo   *time.Time

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the rule is the current one for its city.
func (r *PricingRule) IsOpen() bool {
	return r.Active && r.EffectiveTo == nil
}

// EffectivePricePerView returns the multiplier-adjusted view rate, reporting
// metadata only.
func (r *PricingRule) EffectivePricePerView() float64 {
	return r.PricePerView * r.Multiplier
}

// EffectivePricePerLike returns the multiplier-adjusted like rate, reporting
// metadata only.
func (r *PricingRule) EffectivePricePerLike() float64 {
	return r.PricePerLike * r.Multiplier
}
