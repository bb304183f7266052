package usecase

import (
	"context"
	"errors"

	"engagement-srv/internal/revenue"
	"engagement-srv/internal/revenue/repository"
)

// Recompute derives the revenue snapshot for a post from its current
// counters and the effective pricing rule, then persists it.
func (uc *implUseCase) Recompute(ctx context.Context, postID string) (revenue.Breakdown, error) {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return revenue.Breakdown{}, revenue.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "revenue.usecase.Recompute: Failed to load post: %v", err)
		return revenue.Breakdown{}, revenue.ErrRecomputeFailed
	}

	likesCount, err := uc.repo.CountLikes(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "revenue.usecase.Recompute: Failed to count likes: %v", err)
		return revenue.Breakdown{}, revenue.ErrRecomputeFailed
	}

	rule, err := uc.pricingUC.ActiveForCity(ctx, post.City)
	if err != nil {
		uc.l.Errorf(ctx, "revenue.usecase.Recompute: Failed to resolve pricing rule: %v", err)
		return revenue.Breakdown{}, revenue.ErrRecomputeFailed
	}

	breakdown := revenue.Calculate(post.Views, post.BotViews, likesCount, post.BotLikes, rule)

	if err := uc.repo.SaveSnapshot(ctx, repository.SaveSnapshotOptions{
		PostID:       postID,
		ViewRevenue:  breakdown.ViewRevenue,
		LikeRevenue:  breakdown.LikeRevenue,
		TotalRevenue: breakdown.TotalRevenue,
	}); err != nil {
		uc.l.Errorf(ctx, "revenue.usecase.Recompute: Failed to save snapshot: %v", err)
		return revenue.Breakdown{}, revenue.ErrRecomputeFailed
	}

	return breakdown, nil
}
