package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	moderationHTTP "engagement-srv/internal/moderation/delivery/http"
	moderationPostgre "engagement-srv/internal/moderation/repository/postgre"
	moderationUsecase "engagement-srv/internal/moderation/usecase"
	"engagement-srv/internal/notification"
	notificationProducer "engagement-srv/internal/notification/delivery/kafka/producer"
)

func (srv *HTTPServer) setupModerationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := moderationPostgre.New(srv.postgresDB, srv.l)

	var producer notification.Producer
	if srv.kafkaProducer != nil {
		producer = notificationProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := moderationUsecase.New(repo, srv.revenueUC, producer, srv.l)

	handler := moderationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Moderation domain registered")
	return nil
}
