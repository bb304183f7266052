package repository

import "errors"

var (
	ErrPostNotFound         = errors.New("repository: post not found")
	ErrSnapshotUpdateFailed = errors.New("repository: failed to save revenue snapshot")
)
