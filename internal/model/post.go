package model

import "time"

// Post visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Post represents an authored post with engagement counters, a cached revenue
// snapshot and moderation/payment state.
type Post struct {
	ID       string
	AuthorID string

	Content    string
	City       string
	Visibility string

	// Engagement counters. Views counts every recorded view including bot
	// traffic; BotViews is the subset classified as bot. Likes are not
	// counted here, like-set membership in post_likes is the count;
	// BotLikes tracks the bot subset of that set.
	Views    int64
	BotViews int64
	BotLikes int64

	// Cached revenue snapshot, overwritten on every recompute.
	ViewRevenue  float64
	LikeRevenue  float64
	TotalRevenue float64

	// Moderation state
	Approved        bool
	ApprovedBy      string
	ApprovedAt      *time.Time
	RejectedBy      string
	RejectedAt      *time.Time
	RejectionReason string
	Active          bool

	// Payment state
	Paid          bool
	PaidBy        string
	PaidAt        *time.Time
	PaymentAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayableViews returns the view count that revenue is computed on.
func (p *Post) PayableViews() int64 {
	if v := p.Views - p.BotViews; v > 0 {
		return v
	}
	return 0
}

// PayableLikes returns the like count revenue is computed on, given the
// current like-set size.
func (p *Post) PayableLikes(likesCount int64) int64 {
	if v := likesCount - p.BotLikes; v > 0 {
		return v
	}
	return 0
}
