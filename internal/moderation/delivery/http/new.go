package http

import (
	"engagement-srv/internal/middleware"
	"engagement-srv/internal/moderation"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      moderation.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc moderation.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
