package repository

import "time"

type ApprovePostOptions struct {
	PostID     string
	ApprovedBy string
	ApprovedAt time.Time
}

type RejectPostOptions struct {
	PostID     string
	RejectedBy string
	Reason     string
	RejectedAt time.Time
}

type MarkPaidOptions struct {
	PostID string
	PaidBy string
	Amount float64
	PaidAt time.Time
}

type ListPostsOptions struct {
	Status string // all | pending | approved | paid
	City   string
	Limit  int64
	Offset int64
}

type ListPendingPaymentsOptions struct {
	City   string
	Limit  int64
	Offset int64
}

type ListPaidPostsOptions struct {
	Since  time.Time
	Limit  int64
	Offset int64
}

type PaymentStatsRow struct {
	TotalAmount float64
	TotalPosts  int64
}
