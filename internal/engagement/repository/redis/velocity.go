package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func velocityUserKey(userID string, bucket int64) string {
	return fmt.Sprintf("engagement:velocity:user:%s:%d", userID, bucket)
}

func velocityIPKey(ip string, bucket int64) string {
	return fmt.Sprintf("engagement:velocity:ip:%s:%d", ip, bucket)
}

func currentBucket(now time.Time) int64 {
	return now.Unix() / int64(bucketSize/time.Second)
}

// BumpViewVelocity increments the current bucket for both identities. Bucket
// keys expire one bucket after they leave the window.
func (r *implRepository) BumpViewVelocity(ctx context.Context, userID, ip string) error {
	bucket := currentBucket(time.Now())
	expiry := r.cfg.VelocityWindow + bucketSize

	pipe := r.redis.GetClient().Pipeline()
	if userID != "" {
		key := velocityUserKey(userID, bucket)
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, expiry)
	}
	if ip != "" {
		key := velocityIPKey(ip, bucket)
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, expiry)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("BumpViewVelocity: %w", err)
	}

	return nil
}

// CountRecentViews sums the bucket counters covering the trailing window for
// each identity separately.
func (r *implRepository) CountRecentViews(ctx context.Context, userID, ip string) (int64, int64, error) {
	bucket := currentBucket(time.Now())
	buckets := int64(r.cfg.VelocityWindow / bucketSize)

	userKeys := make([]string, 0, buckets)
	ipKeys := make([]string, 0, buckets)
	for i := int64(0); i < buckets; i++ {
		if userID != "" {
			userKeys = append(userKeys, velocityUserKey(userID, bucket-i))
		}
		if ip != "" {
			ipKeys = append(ipKeys, velocityIPKey(ip, bucket-i))
		}
	}

	userCount, err := r.sumCounters(ctx, userKeys)
	if err != nil {
		return 0, 0, fmt.Errorf("CountRecentViews user: %w", err)
	}

	ipCount, err := r.sumCounters(ctx, ipKeys)
	if err != nil {
		return 0, 0, fmt.Errorf("CountRecentViews ip: %w", err)
	}

	return userCount, ipCount, nil
}

func (r *implRepository) sumCounters(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	values, err := r.redis.GetClient().MGet(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		total += n
	}

	return total, nil
}
