package usecase

import (
	"context"
	"errors"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/moderation"
	"engagement-srv/internal/moderation/repository"
	"engagement-srv/internal/notification"
	"engagement-srv/internal/revenue"
)

// Approve - Transition a pending post to approved and snapshot its revenue.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, postID string) (moderation.ApproveOutput, error) {
	ok, err := uc.repo.ApprovePost(ctx, repository.ApprovePostOptions{
		PostID:     postID,
		ApprovedBy: sc.UserID,
		ApprovedAt: time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Approve: Failed to approve post: %v", err)
		return moderation.ApproveOutput{}, moderation.ErrTransitionFailed
	}
	if !ok {
		return moderation.ApproveOutput{}, uc.explainGuardMiss(ctx, postID, moderation.ErrAlreadyApproved)
	}

	// The snapshot stored at approval time is what the payment flow shows
	// until payout, so recompute failures are surfaced, not swallowed.
	breakdown, err := uc.revenueUC.Recompute(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Approve: Failed to recompute revenue: %v", err)
		return moderation.ApproveOutput{}, moderation.ErrTransitionFailed
	}

	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Approve: Failed to reload post: %v", err)
		return moderation.ApproveOutput{}, moderation.ErrTransitionFailed
	}

	uc.notify(ctx, notification.Event{
		Type:      notification.EventTypePostApproved,
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		ActorID:   sc.UserID,
		CreatedAt: time.Now(),
	})

	return moderation.ApproveOutput{
		Post:         post,
		TotalRevenue: breakdown.TotalRevenue,
	}, nil
}

// Reject - Soft-deactivate a pending post with a reason.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, input moderation.RejectInput) (moderation.RejectOutput, error) {
	reason := input.Reason
	if reason == "" {
		reason = moderation.DefaultRejectionReason
	}

	ok, err := uc.repo.RejectPost(ctx, repository.RejectPostOptions{
		PostID:     input.PostID,
		RejectedBy: sc.UserID,
		Reason:     reason,
		RejectedAt: time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Reject: Failed to reject post: %v", err)
		return moderation.RejectOutput{}, moderation.ErrTransitionFailed
	}
	if !ok {
		return moderation.RejectOutput{}, uc.explainGuardMiss(ctx, input.PostID, moderation.ErrAlreadyRejected)
	}

	post, err := uc.repo.GetPostByID(ctx, input.PostID)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Reject: Failed to reload post: %v", err)
		return moderation.RejectOutput{}, moderation.ErrTransitionFailed
	}

	uc.notify(ctx, notification.Event{
		Type:      notification.EventTypePostRejected,
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		ActorID:   sc.UserID,
		Reason:    reason,
		CreatedAt: time.Now(),
	})

	return moderation.RejectOutput{Post: post}, nil
}

// Pay - Settle an approved post. The amount is recomputed immediately
// before the payment stamp so stale snapshots never get paid out.
func (uc *implUseCase) Pay(ctx context.Context, sc model.Scope, postID string) (moderation.PayOutput, error) {
	breakdown, err := uc.revenueUC.Recompute(ctx, postID)
	if err != nil {
		if errors.Is(err, revenue.ErrPostNotFound) {
			return moderation.PayOutput{}, moderation.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "moderation.usecase.Pay: Failed to recompute revenue: %v", err)
		return moderation.PayOutput{}, moderation.ErrTransitionFailed
	}

	paidAt := time.Now()
	ok, err := uc.repo.MarkPaid(ctx, repository.MarkPaidOptions{
		PostID: postID,
		PaidBy: sc.UserID,
		Amount: breakdown.TotalRevenue,
		PaidAt: paidAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Pay: Failed to mark post paid: %v", err)
		return moderation.PayOutput{}, moderation.ErrTransitionFailed
	}
	if !ok {
		return moderation.PayOutput{}, uc.explainPayGuardMiss(ctx, postID)
	}

	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.Pay: Failed to reload post: %v", err)
		return moderation.PayOutput{}, moderation.ErrTransitionFailed
	}

	uc.notify(ctx, notification.Event{
		Type:      notification.EventTypePaymentProcessed,
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		ActorID:   sc.UserID,
		Amount:    breakdown.TotalRevenue,
		CreatedAt: paidAt,
	})

	return moderation.PayOutput{
		Post:   post,
		Amount: breakdown.TotalRevenue,
		PaidAt: paidAt,
	}, nil
}

// explainGuardMiss reloads the post to turn a zero-row conditional update
// into the precise conflict the caller raced against.
func (uc *implUseCase) explainGuardMiss(ctx context.Context, postID string, fallback error) error {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return moderation.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "moderation.usecase.explainGuardMiss: Failed to reload post: %v", err)
		return moderation.ErrTransitionFailed
	}

	switch {
	case post.Paid:
		return moderation.ErrAlreadyPaid
	case post.Approved:
		return moderation.ErrAlreadyApproved
	case !post.Active:
		return moderation.ErrAlreadyRejected
	}

	return fallback
}

func (uc *implUseCase) explainPayGuardMiss(ctx context.Context, postID string) error {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return moderation.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "moderation.usecase.explainPayGuardMiss: Failed to reload post: %v", err)
		return moderation.ErrTransitionFailed
	}

	switch {
	case post.Paid:
		return moderation.ErrAlreadyPaid
	case !post.Active:
		return moderation.ErrAlreadyRejected
	case !post.Approved:
		return moderation.ErrNotApproved
	}

	return moderation.ErrTransitionFailed
}

func (uc *implUseCase) notify(ctx context.Context, event notification.Event) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishEvent(ctx, event); err != nil {
		uc.l.Warnf(ctx, "moderation.usecase.notify: Failed to publish %s event: %v", event.Type, err)
	}
}
