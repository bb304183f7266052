package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create a post
// @Description Author a post; it starts pending moderation
// @Tags Post
// @Accept json
// @Produce json
// @Param body body createReq true "Post content"
// @Success 200 {object} createResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCreateResp(o))
}

// @Summary Get a post
// @Description Load a post with the caller's like state
// @Tags Post
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} getResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/{post_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	postID, sc, err := h.processGetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Get: processGetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, sc, postID)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary List own posts
// @Description The caller's posts, newest first, including rejected ones
// @Tags Post
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/mine [get]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListMineRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.ListMine: processListMineRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListByAuthor(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.ListMine: usecase ListByAuthor failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}
