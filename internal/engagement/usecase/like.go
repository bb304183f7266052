package usecase

import (
	"context"
	"errors"
	"time"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
	"engagement-srv/internal/notification"
)

// ToggleLike flips like-set membership for the caller. The Redis slot
// rejects rapid re-toggles before any mutation happens.
func (uc *implUseCase) ToggleLike(ctx context.Context, sc model.Scope, input engagement.ToggleLikeInput) (engagement.ToggleLikeOutput, error) {
	if input.PostID == "" {
		return engagement.ToggleLikeOutput{}, engagement.ErrPostIDRequired
	}

	post, err := uc.repo.GetPostByID(ctx, input.PostID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return engagement.ToggleLikeOutput{}, engagement.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "engagement.usecase.ToggleLike: Failed to load post: %v", err)
		return engagement.ToggleLikeOutput{}, engagement.ErrToggleFailed
	}

	acquired, err := uc.cache.AcquireLikeSlot(ctx, input.PostID, sc.UserID)
	if err != nil {
		// Rate limiting is advisory; a cache outage must not block likes.
		uc.l.Warnf(ctx, "engagement.usecase.ToggleLike: Rate-limit check failed, allowing toggle: %v", err)
	} else if !acquired {
		return engagement.ToggleLikeOutput{}, engagement.ErrRateLimited
	}

	verdict := uc.detector.Classify(ctx, engagement.Signal{
		UserID:      sc.UserID,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
		IsAutomated: input.IsAutomated,
	})

	// CAS: try insert first; an existing membership means this call is an
	// unlike.
	inserted, err := uc.repo.InsertLike(ctx, input.PostID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "engagement.usecase.ToggleLike: Failed to insert like: %v", err)
		return engagement.ToggleLikeOutput{}, engagement.ErrToggleFailed
	}

	isLiked := inserted
	if !inserted {
		if _, err := uc.repo.DeleteLike(ctx, input.PostID, sc.UserID); err != nil {
			uc.l.Errorf(ctx, "engagement.usecase.ToggleLike: Failed to delete like: %v", err)
			return engagement.ToggleLikeOutput{}, engagement.ErrToggleFailed
		}
	}

	if verdict.IsBot {
		delta := int64(1)
		if !isLiked {
			delta = -1
		}
		if err := uc.repo.ApplyBotLikeDelta(ctx, input.PostID, delta); err != nil {
			uc.l.Errorf(ctx, "engagement.usecase.ToggleLike: Failed to adjust bot likes: %v", err)
		}
	}

	likesCount, err := uc.repo.CountLikes(ctx, input.PostID)
	if err != nil {
		uc.l.Errorf(ctx, "engagement.usecase.ToggleLike: Failed to count likes: %v", err)
		return engagement.ToggleLikeOutput{}, engagement.ErrToggleFailed
	}

	if _, err := uc.revenueUC.Recompute(ctx, input.PostID); err != nil {
		uc.l.Warnf(ctx, "engagement.usecase.ToggleLike: Revenue recompute failed: %v", err)
	}

	if uc.producer != nil && isLiked && sc.UserID != post.AuthorID {
		if err := uc.producer.PublishEvent(ctx, notification.Event{
			Type:      notification.EventTypeLike,
			PostID:    post.ID,
			AuthorID:  post.AuthorID,
			ActorID:   sc.UserID,
			CreatedAt: time.Now(),
		}); err != nil {
			uc.l.Warnf(ctx, "engagement.usecase.ToggleLike: Failed to publish like notification: %v", err)
		}
	}

	return engagement.ToggleLikeOutput{
		IsLiked:    isLiked,
		LikesCount: likesCount,
	}, nil
}

// GetLikes returns a newest-first page of the like set.
func (uc *implUseCase) GetLikes(ctx context.Context, sc model.Scope, input engagement.GetLikesInput) (engagement.GetLikesOutput, error) {
	if input.PostID == "" {
		return engagement.GetLikesOutput{}, engagement.ErrPostIDRequired
	}

	if _, err := uc.repo.GetPostByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return engagement.GetLikesOutput{}, engagement.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "engagement.usecase.GetLikes: Failed to load post: %v", err)
		return engagement.GetLikesOutput{}, engagement.ErrListLikesFailed
	}

	input.Adjust()

	likes, total, err := uc.repo.ListLikes(ctx, repository.ListLikesOptions{
		PostID: input.PostID,
		Limit:  input.Limit,
		Offset: input.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "engagement.usecase.GetLikes: Failed to list likes: %v", err)
		return engagement.GetLikesOutput{}, engagement.ErrListLikesFailed
	}

	items := make([]engagement.LikeItem, 0, len(likes))
	for _, like := range likes {
		items = append(items, engagement.LikeItem{
			UserID:    like.UserID,
			CreatedAt: like.CreatedAt,
		})
	}

	return engagement.GetLikesOutput{
		Likes:     items,
		Paginator: paginatorOf(total, int64(len(items)), input.Limit, input.Page),
	}, nil
}
