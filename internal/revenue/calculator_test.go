package revenue

import (
	"testing"

	"engagement-srv/internal/model"
)

func TestCalculate(t *testing.T) {
	rule := &model.PricingRule{
		City:         "Mumbai",
		Tier:         model.TierLabel1,
		PricePerView: 0.10,
		PricePerLike: 0.25,
		Multiplier:   1.5,
	}

	t.Run("multiplier never touches revenue", func(t *testing.T) {
		got := Calculate(100, 10, 20, 2, rule)

		want := Breakdown{
			PayableViews: 90,
			PayableLikes: 18,
			ViewRevenue:  9.0,
			LikeRevenue:  4.5,
			TotalRevenue: 13.5,
		}
		if got != want {
			t.Errorf("Calculate() = %+v, want %+v", got, want)
		}
	})

	t.Run("nil rule yields zero breakdown", func(t *testing.T) {
		if got := Calculate(100, 10, 20, 2, nil); got != (Breakdown{}) {
			t.Errorf("Calculate() = %+v, want zero breakdown", got)
		}
	})

	t.Run("bot counts above raw counts floor at zero", func(t *testing.T) {
		got := Calculate(5, 8, 3, 7, rule)

		if got.PayableViews != 0 || got.PayableLikes != 0 {
			t.Errorf("payable counts = %d/%d, want 0/0", got.PayableViews, got.PayableLikes)
		}
		if got.TotalRevenue != 0 {
			t.Errorf("TotalRevenue = %v, want 0", got.TotalRevenue)
		}
	})

	t.Run("zero engagement pays nothing", func(t *testing.T) {
		if got := Calculate(0, 0, 0, 0, rule); got != (Breakdown{}) {
			t.Errorf("Calculate() = %+v, want zero breakdown", got)
		}
	})
}
