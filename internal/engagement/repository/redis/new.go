package redis

import (
	"time"

	"engagement-srv/internal/engagement/repository"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"
)

const (
	// bucketSize is the granularity of the velocity window. The window is
	// covered by window/bucketSize counters summed on read.
	bucketSize = 10 * time.Second

	defaultVelocityWindow  = 60 * time.Second
	defaultRateLimitWindow = 2 * time.Second
)

// Config tunes the trailing windows.
type Config struct {
	VelocityWindow  time.Duration
	RateLimitWindow time.Duration
}

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	cfg   Config
}

func New(redisClient pkgRedis.IRedis, l log.Logger, cfg Config) repository.CacheRepository {
	if cfg.VelocityWindow <= 0 {
		cfg.VelocityWindow = defaultVelocityWindow
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = defaultRateLimitWindow
	}

	return &implRepository{
		redis: redisClient,
		l:     l,
		cfg:   cfg,
	}
}
