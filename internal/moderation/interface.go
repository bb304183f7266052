package moderation

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Approve(ctx context.Context, sc model.Scope, postID string) (ApproveOutput, error)
	Reject(ctx context.Context, sc model.Scope, input RejectInput) (RejectOutput, error)
	Pay(ctx context.Context, sc model.Scope, postID string) (PayOutput, error)

	ListPosts(ctx context.Context, sc model.Scope, input ListPostsInput) (ListPostsOutput, error)
	ListPendingPayments(ctx context.Context, sc model.Scope, input ListPendingPaymentsInput) (ListPendingPaymentsOutput, error)
	ListPaymentHistory(ctx context.Context, sc model.Scope, input ListPaymentHistoryInput) (ListPaymentHistoryOutput, error)
}
