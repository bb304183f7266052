package post

import "errors"

var (
	ErrContentRequired   = errors.New("content is required")
	ErrContentTooLong    = errors.New("content exceeds the maximum length")
	ErrUnknownCity       = errors.New("unknown city")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrPostNotFound      = errors.New("post not found")
	ErrCreateFailed      = errors.New("failed to create post")
	ErrGetFailed         = errors.New("failed to get post")
	ErrListFailed        = errors.New("failed to list posts")
)
