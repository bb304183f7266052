package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPostIDRequest(c *gin.Context) (string, model.Scope, error) {
	postID := c.Param("post_id")
	if postID == "" {
		return "", model.Scope{}, errPostIDRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return postID, sc, nil
}

func (h *handler) processRejectRequest(c *gin.Context) (rejectReq, model.Scope, error) {
	var req rejectReq

	ctx := c.Request.Context()
	// Body is optional; an empty reason falls back to the stored default.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "moderation.delivery.http.processRejectRequest: ShouldBindJSON failed: %v", err)
			return req, model.Scope{}, errWrongBody
		}
	}
	req.PostID = c.Param("post_id")
	if req.PostID == "" {
		return req, model.Scope{}, errPostIDRequired
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListPostsRequest(c *gin.Context) (listPostsReq, model.Scope, error) {
	var req listPostsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processListPostsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListPendingPaymentsRequest(c *gin.Context) (listPendingPaymentsReq, model.Scope, error) {
	var req listPendingPaymentsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processListPendingPaymentsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListPaymentHistoryRequest(c *gin.Context) (listPaymentHistoryReq, model.Scope, error) {
	var req listPaymentHistoryReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processListPaymentHistoryRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
