package usecase

import (
	"engagement-srv/internal/notification"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

// New creates a new notification UseCase implementation.
func New(l log.Logger) notification.UseCase {
	return &implUseCase{
		l: l,
	}
}
