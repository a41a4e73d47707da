package types

// ScoreBreakdown holds one sub-score per résumé section. Values are unrounded;
// each is bounded by its section's maximum weight and the six maxima sum to 100.
type ScoreBreakdown struct {
	PersonalData   float64 `json:"personal_data"`
	Objective      float64 `json:"objective"`
	Education      float64 `json:"education"`
	Experience     float64 `json:"experience"`
	Skills         float64 `json:"skills"`
	AdditionalInfo float64 `json:"additional_info"`
}

// ScoreDetails is the output of the scoring engine: a 0-100 total, the
// per-section breakdown, and up to five improvement suggestions.
type ScoreDetails struct {
	Total       int            `json:"total"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Suggestions []string       `json:"suggestions"`
}
