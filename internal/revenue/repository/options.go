package repository

type SaveSnapshotOptions struct {
	PostID       string
	ViewRevenue  float64
	LikeRevenue  float64
	TotalRevenue float64
}
