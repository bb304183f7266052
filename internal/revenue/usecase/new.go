package usecase

import (
	"engagement-srv/internal/pricing"
	"engagement-srv/internal/revenue"
	"engagement-srv/internal/revenue/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	pricingUC pricing.UseCase
	l         log.Logger
}

// New creates a new revenue UseCase implementation.
func New(repo repository.PostgresRepository, pricingUC pricing.UseCase, l log.Logger) revenue.UseCase {
	return &implUseCase{
		repo:      repo,
		pricingUC: pricingUC,
		l:         l,
	}
}
