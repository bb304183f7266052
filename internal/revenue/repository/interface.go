package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name RevenueRepository
type RevenueRepository interface {
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	SaveSnapshot(ctx context.Context, opts SaveSnapshotOptions) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	RevenueRepository
}
