package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/posts")
	api.Use(mw.Auth())
	{
		api.POST("", h.Create)
		api.GET("/mine", h.ListMine)
		api.GET("/:post_id", h.Get)
	}
}
