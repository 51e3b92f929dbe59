package domain

// CreatorStats aggregates a user's published videos for the analytics view.
type CreatorStats struct {
	VideoCount    int64   `json:"video_count"`
	TotalViews    int64   `json:"total_views"`
	TotalLikes    int64   `json:"total_likes"`
	TotalComments int64   `json:"total_comments"`
	EstimatedCPM  float64 `json:"estimated_cpm"`
	// EstimatedRevenue is views/1000 * CPM. A demo-grade estimate, not a payout.
	EstimatedRevenue float64 `json:"estimated_revenue"`
}
