package http

import (
	"errors"

	"engagement-srv/internal/moderation"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery       = pkgErrors.NewHTTPError(400, "Wrong query")
	errPostIDRequired   = pkgErrors.NewHTTPError(400, "Post ID is required")
	errInvalidStatus    = pkgErrors.NewHTTPError(400, "Invalid status filter")
	errInvalidTimeframe = pkgErrors.NewHTTPError(400, "Invalid timeframe")
	errPostNotFound     = pkgErrors.NewHTTPError(404, "Post not found")
	errAlreadyApproved  = pkgErrors.NewHTTPError(409, "Post is already approved")
	errAlreadyRejected  = pkgErrors.NewHTTPError(409, "Post is already rejected")
	errNotApproved      = pkgErrors.NewHTTPError(409, "Post is not approved")
	errAlreadyPaid      = pkgErrors.NewHTTPError(409, "Post is already paid")
	errTransitionFailed = pkgErrors.NewHTTPError(500, "Failed to update post")
	errListFailed       = pkgErrors.NewHTTPError(500, "Failed to list posts")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, moderation.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, moderation.ErrAlreadyApproved):
		return errAlreadyApproved
	case errors.Is(err, moderation.ErrAlreadyRejected):
		return errAlreadyRejected
	case errors.Is(err, moderation.ErrNotApproved):
		return errNotApproved
	case errors.Is(err, moderation.ErrAlreadyPaid):
		return errAlreadyPaid
	case errors.Is(err, moderation.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, moderation.ErrInvalidTimeframe):
		return errInvalidTimeframe
	case errors.Is(err, moderation.ErrTransitionFailed):
		return errTransitionFailed
	case errors.Is(err, moderation.ErrListFailed):
		return errListFailed
	default:
		panic(err)
	}
}
