package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"engagement-srv/internal/model"
	"engagement-srv/internal/pricing"
	"engagement-srv/internal/pricing/repository"
	"engagement-srv/pkg/log"
)

// fakeRepo keeps rules in memory with the one-open-rule-per-city invariant
// the real repository enforces through its partial unique index.
type fakeRepo struct {
	mu    sync.Mutex
	rules map[string]*model.PricingRule

	tierStats []repository.TierStatRow
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rules: map[string]*model.PricingRule{}}
}

func (f *fakeRepo) CreateRule(ctx context.Context, opts repository.CreateRuleOptions) (*model.PricingRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rule := &model.PricingRule{
		ID:            opts.ID,
		City:          opts.City,
		Tier:          opts.Tier,
		PricePerView:  opts.PricePerView,
		PricePerLike:  opts.PricePerLike,
		Multiplier:    opts.Multiplier,
		Active:        true,
		EffectiveFrom: opts.EffectiveFrom,
		CreatedBy:     opts.CreatedBy,
		CreatedAt:     time.Now(),
	}
	f.rules[rule.ID] = rule
	return rule, nil
}

func (f *fakeRepo) GetRuleByID(ctx context.Context, id string) (*model.PricingRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rule, ok := f.rules[id]
	if !ok {
		return nil, repository.ErrRuleNotFound
	}
	cp := *rule
	return &cp, nil
}

func (f *fakeRepo) GetOpenRuleByCity(ctx context.Context, city string) (*model.PricingRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rule := range f.rules {
		if rule.City == city && rule.Active && rule.EffectiveTo == nil {
			cp := *rule
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CloseRule(ctx context.Context, opts repository.CloseRuleOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rule, ok := f.rules[opts.RuleID]
	if !ok {
		return repository.ErrRuleNotFound
	}
	to := opts.EffectiveTo
	rule.EffectiveTo = &to
	return nil
}

func (f *fakeRepo) ListRules(ctx context.Context, opts repository.ListRulesOptions) ([]model.PricingRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rules []model.PricingRule
	for _, rule := range f.rules {
		if opts.ActiveOnly && (!rule.Active || rule.EffectiveTo != nil) {
			continue
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

func (f *fakeRepo) DeactivateRule(ctx context.Context, opts repository.DeactivateRuleOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rule, ok := f.rules[opts.RuleID]
	if !ok {
		return repository.ErrRuleNotFound
	}
	rule.Active = false
	return nil
}

func (f *fakeRepo) CitiesWithOpenRules(ctx context.Context) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	covered := map[string]struct{}{}
	for _, rule := range f.rules {
		if rule.Active && rule.EffectiveTo == nil {
			covered[rule.City] = struct{}{}
		}
	}
	return covered, nil
}

func (f *fakeRepo) TierStats(ctx context.Context) ([]repository.TierStatRow, error) {
	return f.tierStats, nil
}

func newTestUseCase(repo *fakeRepo) pricing.UseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(repo, l)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("tier and multiplier derive from the city", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo())

		rule, err := uc.Upsert(ctx, sc, pricing.UpsertInput{
			City:         "Mumbai",
			PricePerView: 0.15,
			PricePerLike: 0.38,
		})
		require.NoError(t, err)
		require.Equal(t, model.TierLabel1, rule.Tier)
		require.Equal(t, 1.5, rule.Multiplier)
		require.Equal(t, 0.15, rule.PricePerView)
		require.Equal(t, "admin-1", rule.CreatedBy)
	})

	t.Run("replacing a rule closes the open window", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUseCase(repo)

		first, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0.10, PricePerLike: 0.25})
		require.NoError(t, err)

		second, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0.20, PricePerLike: 0.50})
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		closed, err := repo.GetRuleByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, closed.EffectiveTo)

		open, err := uc.ActiveForCity(ctx, "Mumbai")
		require.NoError(t, err)
		require.Equal(t, second.ID, open.ID)
	})

	t.Run("unknown city", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo())

		_, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Atlantis", PricePerView: 0.10, PricePerLike: 0.25})
		require.ErrorIs(t, err, pricing.ErrUnknownCity)
	})

	t.Run("price outside bounds", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo())

		_, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0, PricePerLike: 0.25})
		require.ErrorIs(t, err, pricing.ErrInvalidPrice)

		_, err = uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0.10, PricePerLike: 150})
		require.ErrorIs(t, err, pricing.ErrInvalidPrice)
	})
}

func TestInitializeDefaults(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("covers every city with baseline rates", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUseCase(repo)

		out, err := uc.InitializeDefaults(ctx, sc)
		require.NoError(t, err)
		require.Equal(t, len(model.Cities), out.Created)
		require.Equal(t, 0, out.Skipped)

		rule, err := uc.ActiveForCity(ctx, "Mumbai")
		require.NoError(t, err)
		require.Equal(t, pricing.DefaultPricePerView, rule.PricePerView)
		require.Equal(t, pricing.DefaultPricePerLike, rule.PricePerLike)
	})

	t.Run("second run skips covered cities", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUseCase(repo)

		_, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0.30, PricePerLike: 0.60})
		require.NoError(t, err)

		out, err := uc.InitializeDefaults(ctx, sc)
		require.NoError(t, err)
		require.Equal(t, len(model.Cities)-1, out.Created)
		require.Equal(t, 1, out.Skipped)

		// The custom rate survives initialization.
		rule, err := uc.ActiveForCity(ctx, "Mumbai")
		require.NoError(t, err)
		require.Equal(t, 0.30, rule.PricePerView)

		out, err = uc.InitializeDefaults(ctx, sc)
		require.NoError(t, err)
		require.Equal(t, 0, out.Created)
		require.Equal(t, len(model.Cities), out.Skipped)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("deactivated rule stops resolving", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUseCase(repo)

		rule, err := uc.Upsert(ctx, sc, pricing.UpsertInput{City: "Mumbai", PricePerView: 0.10, PricePerLike: 0.25})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, sc, rule.ID))

		open, err := uc.ActiveForCity(ctx, "Mumbai")
		require.NoError(t, err)
		require.Nil(t, open)
	})

	t.Run("unknown rule", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo())

		err := uc.Delete(ctx, sc, "missing")
		require.ErrorIs(t, err, pricing.ErrRuleNotFound)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	repo.tierStats = []repository.TierStatRow{
		{Tier: model.TierLabel1, Count: 8, ActiveCount: 8, AvgPricePerView: 0.15, AvgPricePerLike: 0.38},
		{Tier: model.TierLabel2, Count: 12, ActiveCount: 10, AvgPricePerView: 0.12, AvgPricePerLike: 0.30},
	}
	uc := newTestUseCase(repo)

	out, err := uc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 20, out.TotalRules)
	require.Equal(t, 18, out.ActiveRules)
	require.Len(t, out.Tiers, 2)
	require.Equal(t, model.TierLabel1, out.Tiers[0].Tier)
}
