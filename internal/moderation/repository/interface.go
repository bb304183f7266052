package repository

import (
	"context"
	"time"

	"engagement-srv/internal/model"
)

//go:generate mockery --name ModerationRepository
type ModerationRepository interface {
	GetPostByID(ctx context.Context, id string) (*model.Post, error)

	// ApprovePost is a conditional update guarded on the pending state.
	// Returns false when the guard did not match.
	ApprovePost(ctx context.Context, opts ApprovePostOptions) (bool, error)

	// RejectPost soft-deactivates a pending post. Returns false when the
	// guard did not match.
	RejectPost(ctx context.Context, opts RejectPostOptions) (bool, error)

	// MarkPaid stamps the payment on an approved unpaid post. Returns
	// false when the guard did not match.
	MarkPaid(ctx context.Context, opts MarkPaidOptions) (bool, error)

	ListPosts(ctx context.Context, opts ListPostsOptions) ([]model.Post, int64, error)
	ListPendingPayments(ctx context.Context, opts ListPendingPaymentsOptions) ([]model.Post, int64, error)
	ListPaidPosts(ctx context.Context, opts ListPaidPostsOptions) ([]model.Post, int64, error)
	PaymentStats(ctx context.Context, since time.Time) (PaymentStatsRow, error)

	CountLikes(ctx context.Context, postID string) (int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ModerationRepository
}
