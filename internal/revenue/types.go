package revenue

// Breakdown is the result of one revenue computation.
type Breakdown struct {
	PayableViews int64
	PayableLikes int64
	ViewRevenue  float64
	LikeRevenue  float64
	TotalRevenue float64
}
