package repository

import (
	"context"
	"time"

	"engagement-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetPostByID(ctx context.Context, id string) (*model.Post, error)

	// InsertViewEvent appends one immutable row to the view ledger.
	InsertViewEvent(ctx context.Context, opts InsertViewEventOptions) (*model.ViewEvent, error)

	// ApplyView is the single counter mutator: views always +1, bot_views
	// +1 when the event was classified bot. Returns the fresh counters.
	ApplyView(ctx context.Context, opts ApplyViewOptions) (ViewCounters, error)

	// InsertLike adds the (post, user) pair to the like set. Returns false
	// when the pair was already a member.
	InsertLike(ctx context.Context, postID, userID string) (bool, error)

	// DeleteLike removes the pair. Returns false when it was not a member.
	DeleteLike(ctx context.Context, postID, userID string) (bool, error)

	CountLikes(ctx context.Context, postID string) (int64, error)
	ListLikes(ctx context.Context, opts ListLikesOptions) ([]model.PostLike, int64, error)

	// ApplyBotLikeDelta adjusts bot_likes by delta, floored at zero.
	ApplyBotLikeDelta(ctx context.Context, postID string, delta int64) error

	// PurgeViewEventsBefore deletes up to limit ledger rows older than
	// cutoff and returns the number deleted.
	PurgeViewEventsBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// BumpViewVelocity increments the trailing-window view counters for
	// both the user and the source IP.
	BumpViewVelocity(ctx context.Context, userID, ip string) error

	// CountRecentViews returns the per-user and per-IP event counts over
	// the trailing velocity window. Callers bump before classifying, so
	// the counts include the event under classification.
	CountRecentViews(ctx context.Context, userID, ip string) (userCount, ipCount int64, err error)

	// AcquireLikeSlot reserves the (post, user) like toggle slot for the
	// rate-limit window. Returns false when the slot is already held.
	AcquireLikeSlot(ctx context.Context, postID, userID string) (bool, error)
}
