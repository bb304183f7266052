package repository

type InsertViewEventOptions struct {
	ID     string
	PostID string
	UserID string

	IPAddress string
	UserAgent string
	SessionID string
	Referrer  string
	Source    string

	ScrollPercentage int
	ViewDurationMs   int64

	IsBot       bool
	BotScore    int
	IsValidView bool
}

type ApplyViewOptions struct {
	PostID string
	IsBot  bool
}

// ViewCounters is the post-mutation counter snapshot.
type ViewCounters struct {
	Views        int64
	BotViews     int64
	ViewRevenue  float64
	TotalRevenue float64
}

type ListLikesOptions struct {
	PostID string
	Limit  int64
	Offset int64
}
