package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Approve a post
// @Description Transition a pending post to approved and snapshot its revenue
// @Tags Moderation
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} approveResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/posts/{post_id}/approve [patch]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	postID, sc, err := h.processPostIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Approve: processPostIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Approve(ctx, sc, postID)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Approve: usecase Approve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newApproveResp(o))
}

// @Summary Reject a post
// @Description Deactivate a pending post with an optional reason
// @Tags Moderation
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param body body rejectReq false "Rejection reason"
// @Success 200 {object} rejectResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/posts/{post_id}/reject [patch]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRejectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Reject: processRejectRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Reject(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Reject: usecase Reject failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRejectResp(o))
}

// @Summary Pay a post
// @Description Recompute revenue and settle an approved unpaid post
// @Tags Moderation
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} payResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/payments/{post_id}/pay [patch]
func (h *handler) Pay(c *gin.Context) {
	ctx := c.Request.Context()

	postID, sc, err := h.processPostIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Pay: processPostIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Pay(ctx, sc, postID)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.Pay: usecase Pay failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPayResp(o))
}

// @Summary List posts for review
// @Description Page of posts filtered by moderation status with fresh revenue
// @Tags Moderation
// @Produce json
// @Param status query string false "all | pending | approved | paid"
// @Param city query string false "City filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListPostsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPosts: processListPostsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListPosts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPosts: usecase ListPosts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}

// @Summary List pending payments
// @Description Approved unpaid posts, oldest approval first
// @Tags Moderation
// @Produce json
// @Param city query string false "City filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} pendingPaymentsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/payments/pending [get]
func (h *handler) ListPendingPayments(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListPendingPaymentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPendingPayments: processListPendingPaymentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListPendingPayments(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPendingPayments: usecase ListPendingPayments failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPendingPaymentsResp(o))
}

// @Summary Payment history
// @Description Paid posts within a timeframe plus aggregate payment stats
// @Tags Moderation
// @Produce json
// @Param timeframe query string false "7d | 30d | 90d"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} paymentHistoryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/payments/history [get]
func (h *handler) ListPaymentHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListPaymentHistoryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPaymentHistory: processListPaymentHistoryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListPaymentHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ListPaymentHistory: usecase ListPaymentHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPaymentHistoryResp(o))
}
