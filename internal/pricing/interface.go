package pricing

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (*model.PricingRule, error)
	List(ctx context.Context) ([]model.PricingRule, error)
	ListActive(ctx context.Context) ([]model.PricingRule, error)
	Delete(ctx context.Context, sc model.Scope, ruleID string) error
	InitializeDefaults(ctx context.Context, sc model.Scope) (InitializeOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)

	// ActiveForCity resolves the rule revenue is computed against. Returns
	// nil with no error when the city has no effective rule.
	ActiveForCity(ctx context.Context, city string) (*model.PricingRule, error)
}
