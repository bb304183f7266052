package revenue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Recompute resolves the effective pricing rule for the post's city,
	// computes the breakdown from current counters and persists the
	// snapshot onto the post. Always a full recompute, never accumulation.
	Recompute(ctx context.Context, postID string) (Breakdown, error)
}
