package model

import "time"

// PostLike is one row of the like set. Membership is the like count.
type PostLike struct {
	PostID    string
	UserID    string
	CreatedAt time.Time
}
