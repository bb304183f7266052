package repository

import "time"

type CreateRuleOptions struct {
	ID            string
	City          string
	Tier          string
	PricePerView  float64
	PricePerLike  float64
	Multiplier    float64
	EffectiveFrom time.Time
	CreatedBy     string
}

type CloseRuleOptions struct {
	RuleID      string
	EffectiveTo time.Time
	UpdatedBy   string
}

type ListRulesOptions struct {
	ActiveOnly bool
	City       string
}

type DeactivateRuleOptions struct {
	RuleID    string
	UpdatedBy string
}

type TierStatRow struct {
	Tier            string
	Count           int
	ActiveCount     int
	AvgPricePerView float64
	AvgPricePerLike float64
}
