package notification

import "errors"

var (
	ErrUnknownEventType = errors.New("unknown notification event type")
)
