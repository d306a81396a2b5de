package dto

// TierStatus is the reputation tier reached by a score and how far the
// user is from the next one.
type TierStatus struct {
	TierName      string  `json:"tier_name"`
	NextTier      string  `json:"next_tier"`
	CurrentPoints int     `json:"current_points"`
	TargetPoints  int     `json:"target_points"`
	Progress      float64 `json:"progress"` // percent of TargetPoints, 0-100
}

// LeaderboardEntry is one ranked user. Position is 1-based.
type LeaderboardEntry struct {
	Position  int        `json:"position"`
	Trophy    string     `json:"trophy,omitempty"`
	Name      string     `json:"name"`
	Questions int        `json:"questions"`
	Answers   int        `json:"answers"`
	Score     int        `json:"score"`
	Tier      TierStatus `json:"tier"`
}
