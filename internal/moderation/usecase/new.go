package usecase

import (
	"engagement-srv/internal/moderation"
	"engagement-srv/internal/moderation/repository"
	"engagement-srv/internal/notification"
	"engagement-srv/internal/revenue"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	revenueUC revenue.UseCase
	producer  notification.Producer
	l         log.Logger
}

// New creates a new moderation UseCase implementation.
func New(
	repo repository.PostgresRepository,
	revenueUC revenue.UseCase,
	producer notification.Producer,
	l log.Logger,
) moderation.UseCase {
	return &implUseCase{
		repo:      repo,
		revenueUC: revenueUC,
		producer:  producer,
		l:         l,
	}
}
