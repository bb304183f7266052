package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/posts")
	api.Use(mw.Auth())
	{
		api.POST("/view", h.RecordView)
		api.POST("/:post_id/like", h.ToggleLike)
		api.GET("/:post_id/likes", h.GetLikes)
	}
}
