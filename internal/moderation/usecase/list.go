package usecase

import (
	"context"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/moderation"
	"engagement-srv/internal/moderation/repository"
	"engagement-srv/pkg/paginator"
)

var timeframeDays = map[string]int{
	moderation.Timeframe7d:  7,
	moderation.Timeframe30d: 30,
	moderation.Timeframe90d: 90,
}

// ListPosts - Admin review list with fresh revenue per post.
func (uc *implUseCase) ListPosts(ctx context.Context, sc model.Scope, input moderation.ListPostsInput) (moderation.ListPostsOutput, error) {
	status := input.Status
	if status == "" {
		status = moderation.StatusAll
	}
	switch status {
	case moderation.StatusAll, moderation.StatusPending, moderation.StatusApproved, moderation.StatusPaid:
	default:
		return moderation.ListPostsOutput{}, moderation.ErrInvalidStatus
	}

	input.Adjust()

	posts, total, err := uc.repo.ListPosts(ctx, repository.ListPostsOptions{
		Status: status,
		City:   input.City,
		Limit:  input.Limit,
		Offset: input.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.ListPosts: Failed to list posts: %v", err)
		return moderation.ListPostsOutput{}, moderation.ErrListFailed
	}

	reviewed, err := uc.reviewPosts(ctx, posts)
	if err != nil {
		return moderation.ListPostsOutput{}, moderation.ErrListFailed
	}

	return moderation.ListPostsOutput{
		Posts:     reviewed,
		Paginator: paginatorOf(total, int64(len(reviewed)), input.Limit, input.Page),
	}, nil
}

// ListPendingPayments - Approved unpaid posts with the page's pending total.
func (uc *implUseCase) ListPendingPayments(ctx context.Context, sc model.Scope, input moderation.ListPendingPaymentsInput) (moderation.ListPendingPaymentsOutput, error) {
	input.Adjust()

	posts, total, err := uc.repo.ListPendingPayments(ctx, repository.ListPendingPaymentsOptions{
		City:   input.City,
		Limit:  input.Limit,
		Offset: input.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.ListPendingPayments: Failed to list posts: %v", err)
		return moderation.ListPendingPaymentsOutput{}, moderation.ErrListFailed
	}

	reviewed, err := uc.reviewPosts(ctx, posts)
	if err != nil {
		return moderation.ListPendingPaymentsOutput{}, moderation.ErrListFailed
	}

	var pending float64
	for i := range reviewed {
		pending += reviewed[i].TotalRevenue
	}

	return moderation.ListPendingPaymentsOutput{
		Posts:               reviewed,
		TotalPendingRevenue: pending,
		Paginator:           paginatorOf(total, int64(len(reviewed)), input.Limit, input.Page),
	}, nil
}

// ListPaymentHistory - Paid posts within a timeframe plus aggregate stats.
func (uc *implUseCase) ListPaymentHistory(ctx context.Context, sc model.Scope, input moderation.ListPaymentHistoryInput) (moderation.ListPaymentHistoryOutput, error) {
	timeframe := input.Timeframe
	if timeframe == "" {
		timeframe = moderation.Timeframe30d
	}
	days, ok := timeframeDays[timeframe]
	if !ok {
		return moderation.ListPaymentHistoryOutput{}, moderation.ErrInvalidTimeframe
	}

	input.Adjust()
	since := time.Now().AddDate(0, 0, -days)

	posts, total, err := uc.repo.ListPaidPosts(ctx, repository.ListPaidPostsOptions{
		Since:  since,
		Limit:  input.Limit,
		Offset: input.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.ListPaymentHistory: Failed to list posts: %v", err)
		return moderation.ListPaymentHistoryOutput{}, moderation.ErrListFailed
	}

	statsRow, err := uc.repo.PaymentStats(ctx, since)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.ListPaymentHistory: Failed to query stats: %v", err)
		return moderation.ListPaymentHistoryOutput{}, moderation.ErrListFailed
	}

	stats := moderation.PaymentStats{
		TotalAmount: statsRow.TotalAmount,
		TotalPosts:  statsRow.TotalPosts,
	}
	if stats.TotalPosts > 0 {
		stats.AvgAmount = stats.TotalAmount / float64(stats.TotalPosts)
	}

	return moderation.ListPaymentHistoryOutput{
		Posts:     posts,
		Stats:     stats,
		Paginator: paginatorOf(total, int64(len(posts)), input.Limit, input.Page),
	}, nil
}

// reviewPosts attaches like counts and recomputed revenue to a page of
// posts. Recompute failures fall back to the stored snapshot so a pricing
// hiccup does not blank the admin list.
func (uc *implUseCase) reviewPosts(ctx context.Context, posts []model.Post) ([]moderation.ReviewedPost, error) {
	reviewed := make([]moderation.ReviewedPost, 0, len(posts))
	for i := range posts {
		post := posts[i]

		likes, err := uc.repo.CountLikes(ctx, post.ID)
		if err != nil {
			uc.l.Errorf(ctx, "moderation.usecase.reviewPosts: Failed to count likes: %v", err)
			return nil, err
		}

		item := moderation.ReviewedPost{
			Post:         post,
			LikesCount:   likes,
			ViewRevenue:  post.ViewRevenue,
			LikeRevenue:  post.LikeRevenue,
			TotalRevenue: post.TotalRevenue,
		}

		// Paid posts keep their settled snapshot untouched.
		if !post.Paid {
			breakdown, err := uc.revenueUC.Recompute(ctx, post.ID)
			if err != nil {
				uc.l.Warnf(ctx, "moderation.usecase.reviewPosts: Failed to recompute revenue for post %s: %v", post.ID, err)
			} else {
				item.ViewRevenue = breakdown.ViewRevenue
				item.LikeRevenue = breakdown.LikeRevenue
				item.TotalRevenue = breakdown.TotalRevenue
			}
		}

		reviewed = append(reviewed, item)
	}

	return reviewed, nil
}

func paginatorOf(total, count, perPage int64, page int) paginator.Paginator {
	return paginator.Paginator{
		Total:       total,
		Count:       count,
		PerPage:     perPage,
		CurrentPage: page,
	}
}
