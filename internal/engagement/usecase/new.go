package usecase

import (
	"time"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/notification"
	"engagement-srv/internal/revenue"
	"engagement-srv/pkg/log"
)

const (
	defaultMinScrollDepth  = 70
	defaultMinViewDuration = 2000 * time.Millisecond
	defaultRetentionDays   = 90
	defaultPurgeBatchSize  = 5000
)

// Config holds the view-validation and retention knobs.
type Config struct {
	Detector        DetectorConfig
	MinScrollDepth  int
	MinViewDuration time.Duration
	RetentionDays   int
	PurgeBatchSize  int
}

type implUseCase struct {
	repo      repository.PostgresRepository
	cache     repository.CacheRepository
	revenueUC revenue.UseCase
	producer  notification.Producer
	detector  *detector
	l         log.Logger
	config    Config
}

// New creates a new engagement UseCase implementation.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	revenueUC revenue.UseCase,
	producer notification.Producer,
	l log.Logger,
	cfg Config,
) engagement.UseCase {
	if cfg.MinScrollDepth <= 0 {
		cfg.MinScrollDepth = defaultMinScrollDepth
	}
	if cfg.MinViewDuration <= 0 {
		cfg.MinViewDuration = defaultMinViewDuration
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = defaultRetentionDays
	}
	if cfg.PurgeBatchSize <= 0 {
		cfg.PurgeBatchSize = defaultPurgeBatchSize
	}

	return &implUseCase{
		repo:      repo,
		cache:     cache,
		revenueUC: revenueUC,
		producer:  producer,
		detector:  newDetector(cache, l, cfg.Detector),
		l:         l,
		config:    cfg,
	}
}
