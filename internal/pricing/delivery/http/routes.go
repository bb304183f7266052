package http

import (
	"engagement-srv/internal/middleware"
	"engagement-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/admin/pricing")
	api.Use(mw.Auth(), mw.RequireRoles(model.RoleAdmin))
	{
		api.GET("", h.List)
		api.POST("", h.Upsert)
		api.GET("/active", h.ListActive)
		api.GET("/stats", h.Stats)
		api.POST("/initialize", h.InitializeDefaults)
		api.DELETE("/:rule_id", h.Delete)
	}
}
