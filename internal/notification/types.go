package notification

import "time"

const (
	EventTypeLike             = "like"
	EventTypePostApproved     = "post_approved"
	EventTypePostRejected     = "post_rejected"
	EventTypePaymentProcessed = "payment_processed"
)

// Event is a fire-and-forget engagement notification. AuthorID is the
// recipient; ActorID is the user whose action triggered the event.
type Event struct {
	Type     string
	PostID   string
	AuthorID string
	ActorID  string

	// Reason is set for post_rejected events.
	Reason string
	// Amount is set for payment_processed events.
	Amount float64

	CreatedAt time.Time
}
