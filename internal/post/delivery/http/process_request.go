package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "post.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetRequest(c *gin.Context) (string, model.Scope, error) {
	postID := c.Param("post_id")
	if postID == "" {
		return "", model.Scope{}, errPostIDRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return postID, sc, nil
}

func (h *handler) processListMineRequest(c *gin.Context) (listMineReq, model.Scope, error) {
	var req listMineReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "post.delivery.http.processListMineRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
