package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRecordViewRequest(c *gin.Context) (recordViewReq, model.Scope, error) {
	var req recordViewReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.processRecordViewRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processToggleLikeRequest(c *gin.Context) (toggleLikeReq, model.Scope, error) {
	var req toggleLikeReq

	ctx := c.Request.Context()
	// Body is optional for a toggle; metadata defaults to request headers.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "engagement.delivery.http.processToggleLikeRequest: ShouldBindJSON failed: %v", err)
			return req, model.Scope{}, errWrongBody
		}
	}
	req.PostID = c.Param("post_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetLikesRequest(c *gin.Context) (getLikesReq, model.Scope, error) {
	var pq paginator.PaginateQuery

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.processGetLikesRequest: ShouldBindQuery failed: %v", err)
		return getLikesReq{}, model.Scope{}, errWrongQuery
	}

	req := getLikesReq{
		PostID:        c.Param("post_id"),
		PaginateQuery: pq,
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
