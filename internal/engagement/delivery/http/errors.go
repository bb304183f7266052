package http

import (
	"errors"

	"engagement-srv/internal/engagement"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errWrongBody      = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery     = pkgErrors.NewHTTPError(400, "Wrong query")
	errPostIDRequired = pkgErrors.NewHTTPError(400, "Post ID is required")
	errPostNotFound   = pkgErrors.NewHTTPError(404, "Post not found")
	errRateLimited    = pkgErrors.NewHTTPError(429, "Like toggled too frequently")
	errRecordFailed   = pkgErrors.NewHTTPError(500, "Failed to record view")
	errToggleFailed   = pkgErrors.NewHTTPError(500, "Failed to toggle like")
	errListFailed     = pkgErrors.NewHTTPError(500, "Failed to list likes")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, engagement.ErrPostIDRequired):
		return errPostIDRequired
	case errors.Is(err, engagement.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, engagement.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, engagement.ErrRecordFailed):
		return errRecordFailed
	case errors.Is(err, engagement.ErrToggleFailed):
		return errToggleFailed
	case errors.Is(err, engagement.ErrListLikesFailed):
		return errListFailed
	default:
		panic(err)
	}
}
