package engagement

import (
	"time"

	"engagement-srv/pkg/paginator"
)

// Signal carries the request features the classifier scores.
type Signal struct {
	UserID      string
	IPAddress   string
	UserAgent   string
	IsAutomated bool
}

// Verdict is the classifier's decision for one event. Stored on the ledger
// row and never recomputed afterwards.
type Verdict struct {
	IsBot    bool
	BotScore int
	Reasons  []string
}

type RecordViewInput struct {
	PostID           string
	UserAgent        string
	IPAddress        string
	SessionID        string
	Referrer         string
	Source           string
	ScrollPercentage int
	ViewDurationMs   int64
	IsAutomated      bool
}

type RecordViewOutput struct {
	Views        int64
	BotViews     int64
	ViewRevenue  float64
	TotalRevenue float64
	IsBot        bool
	IsValidView  bool
}

type ToggleLikeInput struct {
	PostID      string
	UserAgent   string
	IPAddress   string
	IsAutomated bool
}

type ToggleLikeOutput struct {
	IsLiked    bool
	LikesCount int64
}

type GetLikesInput struct {
	PostID string
	paginator.PaginateQuery
}

type LikeItem struct {
	UserID    string
	CreatedAt time.Time
}

type GetLikesOutput struct {
	Likes []LikeItem
	paginator.Paginator
}
