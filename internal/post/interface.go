package post

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Get(ctx context.Context, sc model.Scope, postID string) (GetOutput, error)
	ListByAuthor(ctx context.Context, sc model.Scope, input ListByAuthorInput) (ListByAuthorOutput, error)
}
