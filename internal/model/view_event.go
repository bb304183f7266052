package model

import "time"

// ViewEvent is one row of the append-only view ledger. Rows are immutable and
// kept for a bounded retention window; they are the source of truth for
// recount and reconciliation jobs.
type ViewEvent struct {
	ID     string
	PostID string
	UserID string

	IPAddress string
	UserAgent string
	SessionID string
	Referrer  string
	Source    string

	// Behavioural signals reported by the client
	ScrollPercentage int   // 0-100
	ViewDurationMs   int64

	// Classifier verdict at ingest time
	IsBot    bool
	BotScore int

	// IsValidView means the view passed both the bot check and the
	// scroll/duration thresholds.
	IsValidView bool

	CreatedAt time.Time
}
