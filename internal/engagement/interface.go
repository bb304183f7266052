package engagement

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	RecordView(ctx context.Context, sc model.Scope, input RecordViewInput) (RecordViewOutput, error)
	ToggleLike(ctx context.Context, sc model.Scope, input ToggleLikeInput) (ToggleLikeOutput, error)
	GetLikes(ctx context.Context, sc model.Scope, input GetLikesInput) (GetLikesOutput, error)

	// PurgeExpired deletes ledger rows older than the retention window in
	// bounded batches and returns the number of rows removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
