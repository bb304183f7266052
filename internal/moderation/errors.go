package moderation

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrAlreadyApproved  = errors.New("post is already approved")
	ErrAlreadyRejected  = errors.New("post is already rejected")
	ErrNotApproved      = errors.New("post is not approved")
	ErrAlreadyPaid      = errors.New("post is already paid")
	ErrInvalidStatus    = errors.New("invalid status filter")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrTransitionFailed = errors.New("failed to apply state transition")
	ErrListFailed       = errors.New("failed to list posts")
)
