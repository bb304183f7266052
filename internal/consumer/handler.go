package consumer

import (
	"context"
	"fmt"
	"time"

	"engagement-srv/internal/engagement"
	engagementPostgre "engagement-srv/internal/engagement/repository/postgre"
	engagementRedis "engagement-srv/internal/engagement/repository/redis"
	engagementUsecase "engagement-srv/internal/engagement/usecase"
	"engagement-srv/internal/notification"
	notificationConsumer "engagement-srv/internal/notification/delivery/kafka/consumer"
	notificationProducer "engagement-srv/internal/notification/delivery/kafka/producer"
	notificationUsecase "engagement-srv/internal/notification/usecase"
	pricingPostgre "engagement-srv/internal/pricing/repository/postgre"
	pricingUsecase "engagement-srv/internal/pricing/usecase"
	revenuePostgre "engagement-srv/internal/revenue/repository/postgre"
	revenueUsecase "engagement-srv/internal/revenue/usecase"
)

// domains holds references to the consumer-side domain layers for cleanup
type domains struct {
	notificationConsumer *notificationConsumer.Consumer

	// engagementUC drives the retention sweeper.
	engagementUC engagement.UseCase
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domains, error) {
	// Notification domain
	notificationUC := notificationUsecase.New(srv.l)
	notificationCons, err := notificationConsumer.New(notificationConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.cfg.Kafka,
		UseCase:     notificationUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}
	srv.l.Infof(ctx, "Notification domain initialized")

	// Engagement domain, wired for retention only. The sweeper never
	// classifies traffic or publishes events.
	pricingUC := pricingUsecase.New(pricingPostgre.New(srv.postgresDB, srv.l), srv.l)
	revenueUC := revenueUsecase.New(revenuePostgre.New(srv.postgresDB, srv.l), pricingUC, srv.l)

	engCfg := srv.cfg.Engagement
	cache := engagementRedis.New(srv.redisClient, srv.l, engagementRedis.Config{
		VelocityWindow:  time.Duration(engCfg.VelocityWindow) * time.Second,
		RateLimitWindow: time.Duration(engCfg.LikeRateLimitWindow) * time.Second,
	})

	var producer notification.Producer
	if srv.kafkaProducer != nil {
		producer = notificationProducer.New(srv.l, srv.kafkaProducer)
	}

	engagementUC := engagementUsecase.New(
		engagementPostgre.New(srv.postgresDB, srv.l),
		cache,
		revenueUC,
		producer,
		srv.l,
		engagementUsecase.Config{
			Detector: engagementUsecase.DetectorConfig{
				ScoreThreshold: engCfg.BotScoreThreshold,
				VelocityBurst:  engCfg.VelocityBurst,
			},
			MinScrollDepth:  engCfg.MinScrollDepth,
			MinViewDuration: time.Duration(engCfg.MinViewDuration) * time.Millisecond,
			RetentionDays:   engCfg.ViewRetentionDays,
		},
	)
	srv.l.Infof(ctx, "Engagement domain initialized")

	return &domains{
		notificationConsumer: notificationCons,
		engagementUC:         engagementUC,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, d *domains) error {
	if err := d.notificationConsumer.ConsumeEngagementEvents(ctx); err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, d *domains) {
	if d.notificationConsumer != nil {
		if err := d.notificationConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing notification consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}

// runRetentionSweeper purges expired view ledger rows on a fixed period
// until the context is cancelled.
func (srv *ConsumerServer) runRetentionSweeper(ctx context.Context, d *domains) {
	period := time.Duration(srv.cfg.Engagement.RetentionSweepPeriod) * time.Second
	if period <= 0 {
		period = time.Hour
	}

	srv.l.Infof(ctx, "Retention sweeper running every %s", period)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			srv.l.Info(ctx, "Retention sweeper stopped")
			return
		case <-ticker.C:
			if _, err := d.engagementUC.PurgeExpired(ctx); err != nil {
				srv.l.Errorf(ctx, "Retention sweep failed: %v", err)
			}
		}
	}
}
