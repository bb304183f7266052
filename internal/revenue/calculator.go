package revenue

import "engagement-srv/internal/model"

// Calculate computes a revenue breakdown from raw counters and a pricing
// rule. Bot-adjusted counts are floored at zero. The rule's raw rates are
// applied directly; the tier multiplier is reporting metadata and never
// touches revenue. A nil rule yields a zero breakdown, not an error.
func Calculate(views, botViews, likesCount, botLikes int64, rule *model.PricingRule) Breakdown {
	if rule == nil {
		return Breakdown{}
	}

	payableViews := views - botViews
	if payableViews < 0 {
		payableViews = 0
	}
	payableLikes := likesCount - botLikes
	if payableLikes < 0 {
		payableLikes = 0
	}

	viewRevenue := float64(payableViews) * rule.PricePerView
	likeRevenue := float64(payableLikes) * rule.PricePerLike

	return Breakdown{
		PayableViews: payableViews,
		PayableLikes: payableLikes,
		ViewRevenue:  viewRevenue,
		LikeRevenue:  likeRevenue,
		TotalRevenue: viewRevenue + likeRevenue,
	}
}
