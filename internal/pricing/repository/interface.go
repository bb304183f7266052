package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name PricingRepository
type PricingRepository interface {
	CreateRule(ctx context.Context, opts CreateRuleOptions) (*model.PricingRule, error)
	GetRuleByID(ctx context.Context, id string) (*model.PricingRule, error)

	// GetOpenRuleByCity returns the currently-effective active rule for a
	// city, or nil when there is none.
	GetOpenRuleByCity(ctx context.Context, city string) (*model.PricingRule, error)

	// CloseRule stamps effective_to on an open rule, ending its window.
	CloseRule(ctx context.Context, opts CloseRuleOptions) error

	ListRules(ctx context.Context, opts ListRulesOptions) ([]model.PricingRule, error)
	DeactivateRule(ctx context.Context, opts DeactivateRuleOptions) error

	// CitiesWithOpenRules returns the set of cities that already have an
	// effective rule.
	CitiesWithOpenRules(ctx context.Context) (map[string]struct{}, error)

	TierStats(ctx context.Context) ([]TierStatRow, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	PricingRepository
}
