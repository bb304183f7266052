package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/post"
	"engagement-srv/pkg/paginator"
)

type createReq struct {
	Content    string `json:"content" binding:"required"`
	City       string `json:"city,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

func (r createReq) toInput() post.CreateInput {
	return post.CreateInput{
		Content:    r.Content,
		City:       r.City,
		Visibility: r.Visibility,
	}
}

type listMineReq struct {
	paginator.PaginateQuery
}

func (r listMineReq) toInput() post.ListByAuthorInput {
	return post.ListByAuthorInput{
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
	ViewRevenue     float64 `json:"view_revenue"`
	LikeRevenue     float64 `json:"like_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`
	Approved        bool    `json:"approved"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	IsActive        bool    `json:"is_active"`
	Paid            bool    `json:"paid"`
	CreatedAt       string  `json:"created_at"`
}

func newPostResp(p model.Post) postResp {
	return postResp{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		Content:         p.Content,
		City:            p.City,
		Visibility:      p.Visibility,
		Views:           p.Views,
		ViewRevenue:     p.ViewRevenue,
		LikeRevenue:     p.LikeRevenue,
		TotalRevenue:    p.TotalRevenue,
		Approved:        p.Approved,
		RejectionReason: p.RejectionReason,
		IsActive:        p.Active,
		Paid:            p.Paid,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

type createResp struct {
	Post postResp `json:"post"`
}

type getResp struct {
	Post       postResp `json:"post"`
	LikesCount int64    `json:"likes_count"`
	IsLiked    bool     `json:"is_liked"`
}

type listResp struct {
	Posts     []postResp                  `json:"posts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newCreateResp(o post.CreateOutput) createResp {
	return createResp{Post: newPostResp(*o.Post)}
}

func (h *handler) newGetResp(o post.GetOutput) getResp {
	return getResp{
		Post:       newPostResp(*o.Post),
		LikesCount: o.LikesCount,
		IsLiked:    o.IsLiked,
	}
}

func (h *handler) newListResp(o post.ListByAuthorOutput) listResp {
	posts := make([]postResp, 0, len(o.Posts))
	for _, p := range o.Posts {
		posts = append(posts, newPostResp(p))
	}

	return listResp{
		Posts:     posts,
		Paginator: o.Paginator.ToResponse(),
	}
}
