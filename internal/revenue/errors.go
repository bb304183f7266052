package revenue

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrRecomputeFailed = errors.New("failed to recompute revenue")
)
