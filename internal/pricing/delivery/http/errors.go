package http

import (
	"errors"

	"engagement-srv/internal/pricing"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errWrongBody      = pkgErrors.NewHTTPError(400, "Wrong body")
	errRuleIDRequired = pkgErrors.NewHTTPError(400, "Rule ID is required")
	errUnknownCity    = pkgErrors.NewHTTPError(400, "City is not in the supported set")
	errInvalidPrice   = pkgErrors.NewHTTPError(400, "Price is out of bounds")
	errRuleNotFound   = pkgErrors.NewHTTPError(404, "Pricing rule not found")
	errUpsertFailed   = pkgErrors.NewHTTPError(500, "Failed to upsert pricing rule")
	errDeleteFailed   = pkgErrors.NewHTTPError(500, "Failed to delete pricing rule")
	errPricingFailed  = pkgErrors.NewHTTPError(500, "Failed to query pricing rules")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrUnknownCity):
		return errUnknownCity
	case errors.Is(err, pricing.ErrInvalidPrice):
		return errInvalidPrice
	case errors.Is(err, pricing.ErrRuleNotFound):
		return errRuleNotFound
	case errors.Is(err, pricing.ErrUpsertFailed):
		return errUpsertFailed
	case errors.Is(err, pricing.ErrDeleteFailed):
		return errDeleteFailed
	default:
		return errPricingFailed
	}
}
