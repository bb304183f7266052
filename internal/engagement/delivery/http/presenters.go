package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/engagement"
	"engagement-srv/pkg/paginator"
)

type recordViewReq struct {
	PostID           string `json:"post_id" binding:"required"`
	ScrollPercentage int    `json:"scroll_percentage"`
	ViewDurationMs   int64  `json:"view_duration_ms"`
	SessionID        string `json:"session_id,omitempty"`
	Referrer         string `json:"referrer,omitempty"`
	Source           string `json:"source,omitempty"`
	IsAutomated      bool   `json:"is_automated,omitempty"`
}

func (r recordViewReq) toInput(c *gin.Context) engagement.RecordViewInput {
	return engagement.RecordViewInput{
		PostID:           r.PostID,
		UserAgent:        c.Request.UserAgent(),
		IPAddress:        c.ClientIP(),
		SessionID:        r.SessionID,
		Referrer:         r.Referrer,
		Source:           r.Source,
		ScrollPercentage: r.ScrollPercentage,
		ViewDurationMs:   r.ViewDurationMs,
		IsAutomated:      r.IsAutomated,
	}
}

type toggleLikeReq struct {
	PostID      string `json:"-"`
	IsAutomated bool   `json:"is_automated,omitempty"`
}

func (r toggleLikeReq) toInput(c *gin.Context) engagement.ToggleLikeInput {
	return engagement.ToggleLikeInput{
		PostID:      r.PostID,
		UserAgent:   c.Request.UserAgent(),
		IPAddress:   c.ClientIP(),
		IsAutomated: r.IsAutomated,
	}
}

type getLikesReq struct {
	PostID string
	paginator.PaginateQuery
}

func (r getLikesReq) toInput() engagement.GetLikesInput {
	return engagement.GetLikesInput{
		PostID:        r.PostID,
		PaginateQuery: r.PaginateQuery,
	}
}

type recordViewResp struct {
	Views        int64   `json:"views"`
	BotViews     int64   `json:"bot_views"`
	ViewRevenue  float64 `json:"view_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	IsBot        bool    `json:"is_bot"`
	IsValidView  bool    `json:"is_valid_view"`
}

type toggleLikeResp struct {
	IsLiked    bool  `json:"is_liked"`
	LikesCount int64 `json:"likes_count"`
}

type likeItem struct {
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

type likesResp struct {
	Likes     []likeItem                  `json:"likes"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newRecordViewResp(o engagement.RecordViewOutput) recordViewResp {
	return recordViewResp{
		Views:        o.Views,
		BotViews:     o.BotViews,
		ViewRevenue:  o.ViewRevenue,
		TotalRevenue: o.TotalRevenue,
		IsBot:        o.IsBot,
		IsValidView:  o.IsValidView,
	}
}

func (h *handler) newToggleLikeResp(o engagement.ToggleLikeOutput) toggleLikeResp {
	return toggleLikeResp{
		IsLiked:    o.IsLiked,
		LikesCount: o.LikesCount,
	}
}

func (h *handler) newLikesResp(o engagement.GetLikesOutput) likesResp {
	likes := make([]likeItem, 0, len(o.Likes))
	for _, like := range o.Likes {
		likes = append(likes, likeItem{
			UserID:    like.UserID,
			CreatedAt: like.CreatedAt.Format(time.RFC3339),
		})
	}

	return likesResp{
		Likes:     likes,
		Paginator: o.Paginator.ToResponse(),
	}
}
