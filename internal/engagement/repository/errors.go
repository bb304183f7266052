package repository

import "errors"

var (
	ErrPostNotFound          = errors.New("repository: post not found")
	ErrViewEventInsertFailed = errors.New("repository: failed to insert view event")
	ErrCounterUpdateFailed   = errors.New("repository: failed to update counters")
)
