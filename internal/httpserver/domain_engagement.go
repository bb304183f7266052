package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	engagementHTTP "engagement-srv/internal/engagement/delivery/http"
	engagementPostgre "engagement-srv/internal/engagement/repository/postgre"
	engagementRedis "engagement-srv/internal/engagement/repository/redis"
	engagementUsecase "engagement-srv/internal/engagement/usecase"
	"engagement-srv/internal/middleware"
	"engagement-srv/internal/notification"
	notificationProducer "engagement-srv/internal/notification/delivery/kafka/producer"
)

func (srv *HTTPServer) setupEngagementDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := engagementPostgre.New(srv.postgresDB, srv.l)

	engCfg := srv.config.Engagement
	cache := engagementRedis.New(srv.redisClient, srv.l, engagementRedis.Config{
		VelocityWindow:  time.Duration(engCfg.VelocityWindow) * time.Second,
		RateLimitWindow: time.Duration(engCfg.LikeRateLimitWindow) * time.Second,
	})

	var producer notification.Producer
	if srv.kafkaProducer != nil {
		producer = notificationProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := engagementUsecase.New(repo, cache, srv.revenueUC, producer, srv.l, engagementUsecase.Config{
		Detector: engagementUsecase.DetectorConfig{
			ScoreThreshold: engCfg.BotScoreThreshold,
			VelocityBurst:  engCfg.VelocityBurst,
		},
		MinScrollDepth:  engCfg.MinScrollDepth,
		MinViewDuration: time.Duration(engCfg.MinViewDuration) * time.Millisecond,
		RetentionDays:   engCfg.ViewRetentionDays,
	})

	handler := engagementHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Engagement domain registered")
	return nil
}
