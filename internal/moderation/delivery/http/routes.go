package http

import (
	"engagement-srv/internal/middleware"
	"engagement-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	admin := r.Group("/api/v1/admin")
	admin.Use(mw.Auth())

	posts := admin.Group("/posts")
	posts.Use(mw.RequireRoles(model.RoleAdmin, model.RoleManager))
	{
		posts.GET("", h.ListPosts)
		posts.PATCH("/:post_id/approve", h.Approve)
		posts.PATCH("/:post_id/reject", h.Reject)
	}

	payments := admin.Group("/payments")
	payments.Use(mw.RequireRoles(model.RoleAdmin, model.RoleManager, model.RoleAccountant))
	{
		payments.GET("/pending", h.ListPendingPayments)
		payments.PATCH("/:post_id/pay", h.Pay)
		payments.GET("/history", h.ListPaymentHistory)
	}
}
