package notification

import "context"

// Producer publishes engagement events. Publishes are fire-and-forget from
// the caller's point of view: a failed publish must never roll back the
// mutation that triggered it.
type Producer interface {
	PublishEvent(ctx context.Context, event Event) error
}

// UseCase dispatches consumed events to their delivery channel.
type UseCase interface {
	Dispatch(ctx context.Context, event Event) error
}
