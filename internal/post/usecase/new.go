package usecase

import (
	"engagement-srv/internal/post"
	"engagement-srv/internal/post/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new post UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) post.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
