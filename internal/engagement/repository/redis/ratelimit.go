package redis

import (
	"context"
	"fmt"
)

func likeSlotKey(postID, userID string) string {
	return fmt.Sprintf("engagement:like_slot:%s:%s", postID, userID)
}

// AcquireLikeSlot reserves the toggle slot with SET NX; the TTL is the
// rate-limit window. A held slot means the pair toggled too recently.
func (r *implRepository) AcquireLikeSlot(ctx context.Context, postID, userID string) (bool, error) {
	ok, err := r.redis.SetNX(ctx, likeSlotKey(postID, userID), 1, r.cfg.RateLimitWindow)
	if err != nil {
		return false, fmt.Errorf("AcquireLikeSlot: %w", err)
	}

	return ok, nil
}
