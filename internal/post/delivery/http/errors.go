package http

import (
	"errors"

	"engagement-srv/internal/post"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery        = pkgErrors.NewHTTPError(400, "Wrong query")
	errPostIDRequired    = pkgErrors.NewHTTPError(400, "Post ID is required")
	errContentRequired   = pkgErrors.NewHTTPError(400, "Content is required")
	errContentTooLong    = pkgErrors.NewHTTPError(400, "Content exceeds the maximum length")
	errUnknownCity       = pkgErrors.NewHTTPError(400, "Unknown city")
	errInvalidVisibility = pkgErrors.NewHTTPError(400, "Invalid visibility")
	errPostNotFound      = pkgErrors.NewHTTPError(404, "Post not found")
	errCreateFailed      = pkgErrors.NewHTTPError(500, "Failed to create post")
	errGetFailed         = pkgErrors.NewHTTPError(500, "Failed to get post")
	errListFailed        = pkgErrors.NewHTTPError(500, "Failed to list posts")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrContentRequired):
		return errContentRequired
	case errors.Is(err, post.ErrContentTooLong):
		return errContentTooLong
	case errors.Is(err, post.ErrUnknownCity):
		return errUnknownCity
	case errors.Is(err, post.ErrInvalidVisibility):
		return errInvalidVisibility
	case errors.Is(err, post.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, post.ErrCreateFailed):
		return errCreateFailed
	case errors.Is(err, post.ErrGetFailed):
		return errGetFailed
	case errors.Is(err, post.ErrListFailed):
		return errListFailed
	default:
		panic(err)
	}
}
