package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/pricing"
	"engagement-srv/internal/pricing/repository"
)

// Upsert installs a new rate for a city. The currently-effective rule is
// closed before the replacement is inserted, so at most one open rule exists
// per city and historical paid figures stay on the old rule.
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input pricing.UpsertInput) (*model.PricingRule, error) {
	if !model.IsKnownCity(input.City) {
		return nil, pricing.ErrUnknownCity
	}
	if !isValidPrice(input.PricePerView) || !isValidPrice(input.PricePerLike) {
		return nil, pricing.ErrInvalidPrice
	}

	now := time.Now()

	current, err := uc.repo.GetOpenRuleByCity(ctx, input.City)
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.Upsert: Failed to resolve current rule: %v", err)
		return nil, pricing.ErrUpsertFailed
	}
	if current != nil {
		if err := uc.repo.CloseRule(ctx, repository.CloseRuleOptions{
			RuleID:      current.ID,
			EffectiveTo: now,
			UpdatedBy:   sc.UserID,
		}); err != nil {
			uc.l.Errorf(ctx, "pricing.usecase.Upsert: Failed to close current rule: %v", err)
			return nil, pricing.ErrUpsertFailed
		}
	}

	tier := model.CityTier(input.City)
	rule, err := uc.repo.CreateRule(ctx, repository.CreateRuleOptions{
		ID:            uuid.New().String(),
		City:          input.City,
		Tier:          tier,
		PricePerView:  input.PricePerView,
		PricePerLike:  input.PricePerLike,
		Multiplier:    model.TierMultiplier(tier),
		EffectiveFrom: now,
		CreatedBy:     sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.Upsert: Failed to create rule: %v", err)
		return nil, pricing.ErrUpsertFailed
	}

	return rule, nil
}

// List returns every pricing rule, newest window first per city.
func (uc *implUseCase) List(ctx context.Context) ([]model.PricingRule, error) {
	rules, err := uc.repo.ListRules(ctx, repository.ListRulesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.List: Failed to list rules: %v", err)
		return nil, err
	}
	return rules, nil
}

// ListActive returns only currently-effective rules.
func (uc *implUseCase) ListActive(ctx context.Context) ([]model.PricingRule, error) {
	rules, err := uc.repo.ListRules(ctx, repository.ListRulesOptions{ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.ListActive: Failed to list rules: %v", err)
		return nil, err
	}
	return rules, nil
}

// Delete soft-deactivates a rule. Revenue resolution skips inactive rules
// from the next recompute on; paid history is untouched.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, ruleID string) error {
	err := uc.repo.DeactivateRule(ctx, repository.DeactivateRuleOptions{
		RuleID:    ruleID,
		UpdatedBy: sc.UserID,
	})
	if errors.Is(err, repository.ErrRuleNotFound) {
		return pricing.ErrRuleNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.Delete: Failed to deactivate rule: %v", err)
		return pricing.ErrDeleteFailed
	}

	return nil
}

// InitializeDefaults installs the baseline 0.10/0.25 rates for every city
// that lacks an effective rule. Idempotent: covered cities are skipped.
func (uc *implUseCase) InitializeDefaults(ctx context.Context, sc model.Scope) (pricing.InitializeOutput, error) {
	covered, err := uc.repo.CitiesWithOpenRules(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.InitializeDefaults: Failed to list covered cities: %v", err)
		return pricing.InitializeOutput{}, pricing.ErrUpsertFailed
	}

	now := time.Now()
	out := pricing.InitializeOutput{}
	for _, city := range model.Cities {
		if _, ok := covered[city]; ok {
			out.Skipped++
			continue
		}

		tier := model.CityTier(city)
		if _, err := uc.repo.CreateRule(ctx, repository.CreateRuleOptions{
			ID:            uuid.New().String(),
			City:          city,
			Tier:          tier,
			PricePerView:  pricing.DefaultPricePerView,
			PricePerLike:  pricing.DefaultPricePerLike,
			Multiplier:    model.TierMultiplier(tier),
			EffectiveFrom: now,
			CreatedBy:     sc.UserID,
		}); err != nil {
			uc.l.Errorf(ctx, "pricing.usecase.InitializeDefaults: Failed to create rule for %s: %v", city, err)
			return out, pricing.ErrUpsertFailed
		}
		out.Created++
	}

	return out, nil
}

// Stats returns per-tier rule counts and average active prices.
func (uc *implUseCase) Stats(ctx context.Context) (pricing.StatsOutput, error) {
	rows, err := uc.repo.TierStats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "pricing.usecase.Stats: Failed to query tier stats: %v", err)
		return pricing.StatsOutput{}, err
	}

	out := pricing.StatsOutput{}
	for _, row := range rows {
		out.TotalRules += row.Count
		out.ActiveRules += row.ActiveCount
		out.Tiers = append(out.Tiers, pricing.TierStat{
			Tier:            row.Tier,
			Count:           row.Count,
			AvgPricePerView: row.AvgPricePerView,
			AvgPricePerLike: row.AvgPricePerLike,
		})
	}

	return out, nil
}

// ActiveForCity resolves the effective rule for a city.
func (uc *implUseCase) ActiveForCity(ctx context.Context, city string) (*model.PricingRule, error) {
	return uc.repo.GetOpenRuleByCity(ctx, city)
}

func isValidPrice(p float64) bool {
	return p >= pricing.MinPrice && p <= pricing.MaxPrice
}
