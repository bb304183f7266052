package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/moderation"
	"engagement-srv/pkg/paginator"
)

type rejectReq struct {
	PostID string `json:"-"`
	Reason string `json:"reason"`
}

func (r rejectReq) toInput() moderation.RejectInput {
	return moderation.RejectInput{
		PostID: r.PostID,
		Reason: r.Reason,
	}
}

type listPostsReq struct {
	Status string `form:"status"`
	City   string `form:"city"`
	paginator.PaginateQuery
}

func (r listPostsReq) toInput() moderation.ListPostsInput {
	return moderation.ListPostsInput{
		Status:        r.Status,
		City:          r.City,
		PaginateQuery: r.PaginateQuery,
	}
}

type listPendingPaymentsReq struct {
	City string `form:"city"`
	paginator.PaginateQuery
}

func (r listPendingPaymentsReq) toInput() moderation.ListPendingPaymentsInput {
	return moderation.ListPendingPaymentsInput{
		City:          r.City,
		PaginateQuery: r.PaginateQuery,
	}
}

type listPaymentHistoryReq struct {
	Timeframe string `form:"timeframe"`
	paginator.PaginateQuery
}

func (r listPaymentHistoryReq) toInput() moderation.ListPaymentHistoryInput {
	return moderation.ListPaymentHistoryInput{
		Timeframe:     r.Timeframe,
		PaginateQuery: r.PaginateQuery,
	}
}

type postResp struct {
	ID              string  `json:"id"`
	AuthorID        string  `json:"author_id"`
	Content         string  `json:"content"`
	City            string  `json:"city"`
	Visibility      string  `json:"visibility"`
	Views           int64   `json:"views"`
	BotViews        int64   `json:"bot_views"`
	BotLikes        int64   `json:"bot_likes"`
	ViewRevenue     float64 `json:"view_revenue"`
	LikeRevenue     float64 `json:"like_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`
	Approved        bool    `json:"approved"`
	ApprovedBy      string  `json:"approved_by,omitempty"`
	ApprovedAt      string  `json:"approved_at,omitempty"`
	RejectedBy      string  `json:"rejected_by,omitempty"`
	RejectedAt      string  `json:"rejected_at,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	IsActive        bool    `json:"is_active"`
	Paid            bool    `json:"paid"`
	PaidBy          string  `json:"paid_by,omitempty"`
	PaidAt          string  `json:"paid_at,omitempty"`
	PaymentAmount   float64 `json:"payment_amount"`
	CreatedAt       string  `json:"created_at"`
}

func newPostResp(p model.Post) postResp {
	resp := postResp{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		Content:         p.Content,
		City:            p.City,
		Visibility:      p.Visibility,
		Views:           p.Views,
		BotViews:        p.BotViews,
		BotLikes:        p.BotLikes,
		ViewRevenue:     p.ViewRevenue,
		LikeRevenue:     p.LikeRevenue,
		TotalRevenue:    p.TotalRevenue,
		Approved:        p.Approved,
		ApprovedBy:      p.ApprovedBy,
		RejectedBy:      p.RejectedBy,
		RejectionReason: p.RejectionReason,
		IsActive:        p.Active,
		Paid:            p.Paid,
		PaidBy:          p.PaidBy,
		PaymentAmount:   p.PaymentAmount,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}

	if p.ApprovedAt != nil {
		resp.ApprovedAt = p.ApprovedAt.Format(time.RFC3339)
	}
	if p.RejectedAt != nil {
		resp.RejectedAt = p.RejectedAt.Format(time.RFC3339)
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format(time.RFC3339)
	}

	return resp
}

type approveResp struct {
	Post         postResp `json:"post"`
	TotalRevenue float64  `json:"total_revenue"`
}

type rejectResp struct {
	Post postResp `json:"post"`
}

type payResp struct {
	Post   postResp `json:"post"`
	Amount float64  `json:"amount"`
	PaidAt string   `json:"paid_at"`
}

type reviewedPostItem struct {
	Post         postResp `json:"post"`
	LikesCount   int64    `json:"likes_count"`
	ViewRevenue  float64  `json:"view_revenue"`
	LikeRevenue  float64  `json:"like_revenue"`
	TotalRevenue float64  `json:"total_revenue"`
}

type listPostsResp struct {
	Posts     []reviewedPostItem          `json:"posts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type pendingPaymentsResp struct {
	Posts               []reviewedPostItem          `json:"posts"`
	TotalPendingRevenue float64                     `json:"total_pending_revenue"`
	Paginator           paginator.PaginatorResponse `json:"paginator"`
}

type paymentStatsResp struct {
	TotalAmount float64 `json:"total_amount"`
	TotalPosts  int64   `json:"total_posts"`
	AvgAmount   float64 `json:"avg_amount"`
}

type paymentHistoryResp struct {
	Posts     []postResp                  `json:"posts"`
	Stats     paymentStatsResp            `json:"stats"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newApproveResp(o moderation.ApproveOutput) approveResp {
	return approveResp{
		Post:         newPostResp(*o.Post),
		TotalRevenue: o.TotalRevenue,
	}
}

func (h *handler) newRejectResp(o moderation.RejectOutput) rejectResp {
	return rejectResp{Post: newPostResp(*o.Post)}
}

func (h *handler) newPayResp(o moderation.PayOutput) payResp {
	return payResp{
		Post:   newPostResp(*o.Post),
		Amount: o.Amount,
		PaidAt: o.PaidAt.Format(time.RFC3339),
	}
}

func newReviewedPostItems(posts []moderation.ReviewedPost) []reviewedPostItem {
	items := make([]reviewedPostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, reviewedPostItem{
			Post:         newPostResp(p.Post),
			LikesCount:   p.LikesCount,
			ViewRevenue:  p.ViewRevenue,
			LikeRevenue:  p.LikeRevenue,
			TotalRevenue: p.TotalRevenue,
		})
	}
	return items
}

func (h *handler) newListPostsResp(o moderation.ListPostsOutput) listPostsResp {
	return listPostsResp{
		Posts:     newReviewedPostItems(o.Posts),
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newPendingPaymentsResp(o moderation.ListPendingPaymentsOutput) pendingPaymentsResp {
	return pendingPaymentsResp{
		Posts:               newReviewedPostItems(o.Posts),
		TotalPendingRevenue: o.TotalPendingRevenue,
		Paginator:           o.Paginator.ToResponse(),
	}
}

func (h *handler) newPaymentHistoryResp(o moderation.ListPaymentHistoryOutput) paymentHistoryResp {
	posts := make([]postResp, 0, len(o.Posts))
	for _, p := range o.Posts {
		posts = append(posts, newPostResp(p))
	}

	return paymentHistoryResp{
		Posts: posts,
		Stats: paymentStatsResp{
			TotalAmount: o.Stats.TotalAmount,
			TotalPosts:  o.Stats.TotalPosts,
			AvgAmount:   o.Stats.AvgAmount,
		},
		Paginator: o.Paginator.ToResponse(),
	}
}
