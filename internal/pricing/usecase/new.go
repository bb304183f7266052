package usecase

import (
	"engagement-srv/internal/pricing"
	"engagement-srv/internal/pricing/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new pricing UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) pricing.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
