package httpserver

import (
	"database/sql"
	"errors"

	"engagement-srv/config"
	"engagement-srv/internal/pricing"
	"engagement-srv/internal/revenue"
	"engagement-srv/pkg/discord"
	pkgJWT "engagement-srv/pkg/jwt"
	pkgKafka "engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Cache Configuration
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer

	// Authentication Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager

	// Cross-domain usecases wired during handler mapping. Pricing feeds
	// revenue; revenue feeds engagement and moderation.
	pricingUC pricing.UseCase
	revenueUC revenue.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Cache Configuration
	RedisClient pkgRedis.IRedis

	// Messaging Configuration
	KafkaProducer pkgKafka.IProducer

	// Authentication Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	// kafkaProducer is optional; without it notifications are skipped

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
