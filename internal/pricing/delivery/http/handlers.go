package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Upsert a pricing rule
// @Description Close the city's open rule and insert the replacement
// @Tags Pricing
// @Accept json
// @Produce json
// @Param body body upsertReq true "City and rates"
// @Success 200 {object} ruleResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing [post]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpsertRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.Upsert: processUpsertRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	rule, err := h.uc.Upsert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.Upsert: usecase Upsert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRuleResp(*rule))
}

// @Summary List pricing rules
// @Description Every rule including closed historical versions
// @Tags Pricing
// @Produce json
// @Success 200 {object} rulesResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	rules, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRulesResp(rules))
}

// @Summary List active pricing rules
// @Description Currently open rule per city
// @Tags Pricing
// @Produce json
// @Success 200 {object} rulesResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing/active [get]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	rules, err := h.uc.ListActive(ctx)
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.ListActive: usecase ListActive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRulesResp(rules))
}

// @Summary Pricing stats
// @Description Rule counts and per-tier averages
// @Tags Pricing
// @Produce json
// @Success 200 {object} statsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing/stats [get]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.Stats: usecase Stats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStatsResp(o))
}

// @Summary Initialize default pricing
// @Description Create baseline rules for cities without one
// @Tags Pricing
// @Produce json
// @Success 200 {object} initializeResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing/initialize [post]
func (h *handler) InitializeDefaults(c *gin.Context) {
	ctx := c.Request.Context()

	sc := h.scopeOf(c)
	o, err := h.uc.InitializeDefaults(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.InitializeDefaults: usecase InitializeDefaults failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, initializeResp{Created: o.Created, Skipped: o.Skipped})
}

// @Summary Delete a pricing rule
// @Description Deactivate one rule version
// @Tags Pricing
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/pricing/{rule_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	ruleID := c.Param("rule_id")
	if ruleID == "" {
		response.Error(c, errRuleIDRequired, h.discord)
		return
	}

	sc := h.scopeOf(c)
	if err := h.uc.Delete(ctx, sc, ruleID); err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
