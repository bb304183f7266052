package repository

import "errors"

var (
	ErrPostNotFound     = errors.New("repository: post not found")
	ErrPostUpdateFailed = errors.New("repository: failed to update post")
)
