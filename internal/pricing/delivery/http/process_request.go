package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processUpsertRequest(c *gin.Context) (upsertReq, model.Scope, error) {
	var req upsertReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "pricing.delivery.http.processUpsertRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) scopeOf(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}
