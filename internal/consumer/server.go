package consumer

import (
	"context"
	"database/sql"

	"engagement-srv/config"
	"engagement-srv/pkg/discord"
	pkgKafka "engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator. It also runs the view
// ledger retention sweeper.
type ConsumerServer struct {
	// Core Configuration
	l   log.Logger
	cfg *config.Config

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	postgresDB    *sql.DB
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	PostgresDB    *sql.DB
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	domains, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, domains); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	go srv.runRetentionSweeper(ctx, domains)

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, domains)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
