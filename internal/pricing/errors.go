package pricing

import "errors"

var (
	ErrUnknownCity   = errors.New("city is not in the supported set")
	ErrInvalidPrice  = errors.New("price is out of bounds")
	ErrRuleNotFound  = errors.New("pricing rule not found")
	ErrUpsertFailed  = errors.New("failed to upsert pricing rule")
	ErrDeleteFailed  = errors.New("failed to delete pricing rule")
)
