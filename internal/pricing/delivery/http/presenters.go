package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/pricing"
)

type upsertReq struct {
	City         string  `json:"city" binding:"required"`
	PricePerView float64 `json:"price_per_view" binding:"required"`
	PricePerLike float64 `json:"price_per_like" binding:"required"`
}

func (r upsertReq) toInput() pricing.UpsertInput {
	return pricing.UpsertInput{
		City:         r.City,
		PricePerView: r.PricePerView,
		PricePerLike: r.PricePerLike,
	}
}

type ruleResp struct {
	ID            string  `json:"id"`
	City          string  `json:"city"`
	Tier          string  `json:"tier"`
	PricePerView  float64 `json:"price_per_view"`
	PricePerLike  float64 `json:"price_per_like"`
	Multiplier    float64 `json:"multiplier"`
	IsActive      bool    `json:"is_active"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   string  `json:"effective_to,omitempty"`
	CreatedBy     string  `json:"created_by,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func newRuleResp(r model.PricingRule) ruleResp {
	resp := ruleResp{
		ID:            r.ID,
		City:          r.City,
		Tier:          r.Tier,
		PricePerView:  r.PricePerView,
		PricePerLike:  r.PricePerLike,
		Multiplier:    r.Multiplier,
		IsActive:      r.Active,
		EffectiveFrom: r.EffectiveFrom.Format(time.RFC3339),
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.EffectiveTo != nil {
		resp.EffectiveTo = r.EffectiveTo.Format(time.RFC3339)
	}
	return resp
}

type rulesResp struct {
	Rules []ruleResp `json:"rules"`
}

func newRulesResp(rules []model.PricingRule) rulesResp {
	items := make([]ruleResp, 0, len(rules))
	for _, r := range rules {
		items = append(items, newRuleResp(r))
	}
	return rulesResp{Rules: items}
}

type tierStatResp struct {
	Tier            string  `json:"tier"`
	Count           int     `json:"count"`
	AvgPricePerView float64 `json:"avg_price_per_view"`
	AvgPricePerLike float64 `json:"avg_price_per_like"`
}

type statsResp struct {
	TotalRules  int            `json:"total_rules"`
	ActiveRules int            `json:"active_rules"`
	Tiers       []tierStatResp `json:"tiers"`
}

func newStatsResp(o pricing.StatsOutput) statsResp {
	tiers := make([]tierStatResp, 0, len(o.Tiers))
	for _, t := range o.Tiers {
		tiers = append(tiers, tierStatResp{
			Tier:            t.Tier,
			Count:           t.Count,
			AvgPricePerView: t.AvgPricePerView,
			AvgPricePerLike: t.AvgPricePerLike,
		})
	}

	return statsResp{
		TotalRules:  o.TotalRules,
		ActiveRules: o.ActiveRules,
		Tiers:       tiers,
	}
}

type initializeResp struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
