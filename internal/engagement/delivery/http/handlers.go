package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Record a post view
// @Description Classify and record a view event, then return fresh counters
// @Tags Engagement
// @Accept json
// @Produce json
// @Param body body recordViewReq true "View metadata"
// @Success 200 {object} recordViewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/view [post]
func (h *handler) RecordView(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRecordViewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.RecordView: processRecordViewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RecordView(ctx, sc, req.toInput(c))
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.RecordView: usecase RecordView failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRecordViewResp(o))
}

// @Summary Toggle a like
// @Description Flip like membership for the caller and return the new count
// @Tags Engagement
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} toggleLikeResp
// @Failure 404 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/{post_id}/like [post]
func (h *handler) ToggleLike(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processToggleLikeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.ToggleLike: processToggleLikeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ToggleLike(ctx, sc, req.toInput(c))
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.ToggleLike: usecase ToggleLike failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newToggleLikeResp(o))
}

// @Summary List likes
// @Description Newest-first page of users who like the post
// @Tags Engagement
// @Produce json
// @Param post_id path string true "Post ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} likesResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/{post_id}/likes [get]
func (h *handler) GetLikes(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetLikesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.GetLikes: processGetLikesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetLikes(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "engagement.delivery.http.GetLikes: usecase GetLikes failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLikesResp(o))
}
