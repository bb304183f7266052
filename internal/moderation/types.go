package moderation

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

// Review list status filters.
const (
	StatusAll      = "all"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

// Payment history timeframes.
const (
	Timeframe7d  = "7d"
	Timeframe30d = "30d"
	Timeframe90d = "90d"
)

// DefaultRejectionReason is stored when a rejection carries no reason.
const DefaultRejectionReason = "No reason provided"

type ApproveOutput struct {
	Post         *model.Post
	TotalRevenue float64
}

type RejectInput struct {
	PostID string
	Reason string
}

type RejectOutput struct {
	Post *model.Post
}

type PayOutput struct {
	Post   *model.Post
	Amount float64
	PaidAt time.Time
}

type ListPostsInput struct {
	Status string
	City   string
	paginator.PaginateQuery
}

// ReviewedPost pairs a post with its like count and freshly recomputed
// revenue for the admin review list.
type ReviewedPost struct {
	Post         model.Post
	LikesCount   int64
	ViewRevenue  float64
	LikeRevenue  float64
	TotalRevenue float64
}

type ListPostsOutput struct {
	Posts []ReviewedPost
	paginator.Paginator
}

type ListPendingPaymentsInput struct {
	City string
	paginator.PaginateQuery
}

type ListPendingPaymentsOutput struct {
	Posts []ReviewedPost
	// TotalPendingRevenue sums the recomputed totals on this page.
	TotalPendingRevenue float64
	paginator.Paginator
}

type ListPaymentHistoryInput struct {
	Timeframe string
	paginator.PaginateQuery
}

type PaymentStats struct {
	TotalAmount float64
	TotalPosts  int64
	AvgAmount   float64
}

type ListPaymentHistoryOutput struct {
	Posts []model.Post
	Stats PaymentStats
	paginator.Paginator
}
