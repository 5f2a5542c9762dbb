package dto

// RankedPizzaResponse is one leaderboard row. DisplayName and
// ContestantName are already redacted for the requesting viewer; both
// the total and the average projections are included so the client can
// render either presentation.
type RankedPizzaResponse struct {
	Rank             int       `json:"rank"`
	PizzaID          uint      `json:"pizza_id"`
	DisplayName      string    `json:"display_name"`
	ContestantName   string    `json:"contestant_name,omitempty"`
	PhotoURL         string    `json:"photo_url,omitempty"`
	CategoryTotals   []float64 `json:"category_totals"`
	CategoryAverages []float64 `json:"category_averages"`
	OverallTotal     float64   `json:"overall_total"`
	OverallAverage   float64   `json:"overall_average"`
	VoteCount        int       `json:"vote_count"`
}

// LeaderboardResponse is the full ranked view for one metric.
type LeaderboardResponse struct {
	Metric   string                `json:"metric"`
	Entries  []RankedPizzaResponse `json:"entries"`
	CacheHit bool                  `json:"cache_hit"`
}
