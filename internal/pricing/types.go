package pricing

const (
	// Price bounds for both per-view and per-like rates.
	MinPrice = 0.01
	MaxPrice = 100.0

	// Baseline rates used by InitializeDefaults.
	DefaultPricePerView = 0.10
	DefaultPricePerLike = 0.25
)

type UpsertInput struct {
	City         string
	PricePerView float64
	PricePerLike float64
}

type InitializeOutput struct {
	Created int
	Skipped int
}

type TierStat struct {
	Tier            string
	Count           int
	AvgPricePerView float64
	AvgPricePerLike float64
}

type StatsOutput struct {
	TotalRules  int
	ActiveRules int
	Tiers       []TierStat
}
