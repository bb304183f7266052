package engagement

import "errors"

var (
	ErrPostIDRequired  = errors.New("post_id is required")
	ErrPostNotFound    = errors.New("post not found")
	ErrRateLimited     = errors.New("like toggled too frequently")
	ErrRecordFailed    = errors.New("failed to record view")
	ErrToggleFailed    = errors.New("failed to toggle like")
	ErrListLikesFailed = errors.New("failed to list likes")
)
