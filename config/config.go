package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Posts, view ledger, pricing rules
	Postgres PostgresConfig

	// Redis - Velocity windows, rate limiting
	Redis RedisConfig

	// Kafka - Notification events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT            JWTConfig
	InternalConfig InternalConfig

	// Engagement - Bot detection and view validation knobs
	Engagement EngagementConfig

	// Pricing - Fallback per-view/per-like rates
	Pricing PricingConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Optional; leave empty to disable.
	InternalKey string
}

// EngagementConfig tunes the traffic classifier and view validation.
type EngagementConfig struct {
	BotScoreThreshold    int
	VelocityWindow       int // in seconds
	VelocityBurst        int // events per window before traffic is flagged
	LikeRateLimitWindow  int // in seconds
	MinScrollDepth       int // percent
	MinViewDuration      int // in milliseconds
	ViewRetentionDays    int
	RetentionSweepPeriod int // in seconds, consumer binary only
}

// PricingConfig holds the fallback rates used when no pricing rule matches.
type PricingConfig struct {
	DefaultPricePerView float64
	DefaultPricePerLike float64
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("engagement-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/engagement/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Posts, view ledger, pricing rules
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Velocity windows, rate limiting
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Notification events
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ConsumerGroup = viper.GetString("kafka.consumer_group")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Internal auth key
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	// Engagement
	cfg.Engagement.BotScoreThreshold = viper.GetInt("engagement.bot_score_threshold")
	cfg.Engagement.VelocityWindow = viper.GetInt("engagement.velocity_window")
	cfg.Engagement.VelocityBurst = viper.GetInt("engagement.velocity_burst")
	cfg.Engagement.LikeRateLimitWindow = viper.GetInt("engagement.like_rate_limit_window")
	cfg.Engagement.MinScrollDepth = viper.GetInt("engagement.min_scroll_depth")
	cfg.Engagement.MinViewDuration = viper.GetInt("engagement.min_view_duration")
	cfg.Engagement.ViewRetentionDays = viper.GetInt("engagement.view_retention_days")
	cfg.Engagement.RetentionSweepPeriod = viper.GetInt("engagement.retention_sweep_period")

	// Pricing fallbacks
	cfg.Pricing.DefaultPricePerView = viper.GetFloat64("pricing.default_price_per_view")
	cfg.Pricing.DefaultPricePerLike = viper.GetFloat64("pricing.default_price_per_like")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "engagement")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "engagement.notifications")
	viper.SetDefault("kafka.consumer_group", "engagement-srv")

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "engagement-auth-service")
	viper.SetDefault("jwt.audience", []string{"engagement-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Engagement
	viper.SetDefault("engagement.bot_score_threshold", 50)
	viper.SetDefault("engagement.velocity_window", 60)
	viper.SetDefault("engagement.velocity_burst", 10)
	viper.SetDefault("engagement.like_rate_limit_window", 2)
	viper.SetDefault("engagement.min_scroll_depth", 70)
	viper.SetDefault("engagement.min_view_duration", 2000)
	viper.SetDefault("engagement.view_retention_days", 90)
	viper.SetDefault("engagement.retention_sweep_period", 3600)

	// Pricing fallbacks
	viper.SetDefault("pricing.default_price_per_view", 0.10)
	viper.SetDefault("pricing.default_price_per_like", 0.25)
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Engagement.BotScoreThreshold <= 0 {
		return fmt.Errorf("engagement.bot_score_threshold must be greater than 0")
	}
	if cfg.Engagement.VelocityWindow <= 0 {
		return fmt.Errorf("engagement.velocity_window must be greater than 0")
	}
	if cfg.Engagement.VelocityBurst <= 0 {
		return fmt.Errorf("engagement.velocity_burst must be greater than 0")
	}
	if cfg.Engagement.ViewRetentionDays <= 0 {
		return fmt.Errorf("engagement.view_retention_days must be greater than 0")
	}

	if cfg.Pricing.DefaultPricePerView < 0 || cfg.Pricing.DefaultPricePerLike < 0 {
		return fmt.Errorf("pricing defaults must not be negative")
	}

	return nil
}
