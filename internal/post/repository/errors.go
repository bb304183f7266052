package repository

import "errors"

var (
	ErrPostNotFound     = errors.New("repository: post not found")
	ErrPostCreateFailed = errors.New("repository: failed to create post")
)
