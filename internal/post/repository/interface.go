package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreatePost(ctx context.Context, opts CreatePostOptions) (*model.Post, error)
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	ListPostsByAuthor(ctx context.Context, opts ListPostsByAuthorOptions) ([]model.Post, int64, error)

	CountLikes(ctx context.Context, postID string) (int64, error)
	IsLikedBy(ctx context.Context, postID, userID string) (bool, error)
}
