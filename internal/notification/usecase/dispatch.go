package usecase

import (
	"context"

	"engagement-srv/internal/notification"
)

// Dispatch hands a consumed event to its delivery channel. Push and email
// delivery sit behind an external collaborator; this boundary emits the
// structured event it would hand over.
func (uc *implUseCase) Dispatch(ctx context.Context, event notification.Event) error {
	switch event.Type {
	case notification.EventTypeLike:
		uc.l.Infof(ctx, "notification.usecase.Dispatch: %s liked post %s (recipient %s)",
			event.ActorID, event.PostID, event.AuthorID)
	case notification.EventTypePostApproved:
		uc.l.Infof(ctx, "notification.usecase.Dispatch: post %s approved (recipient %s)",
			event.PostID, event.AuthorID)
	case notification.EventTypePostRejected:
		uc.l.Infof(ctx, "notification.usecase.Dispatch: post %s rejected, reason %q (recipient %s)",
			event.PostID, event.Reason, event.AuthorID)
	case notification.EventTypePaymentProcessed:
		uc.l.Infof(ctx, "notification.usecase.Dispatch: payment of %.2f processed for post %s (recipient %s)",
			event.Amount, event.PostID, event.AuthorID)
	default:
		return notification.ErrUnknownEventType
	}

	return nil
}
