package models

// Recommendation is one job suggested for a user by the recommendation service.
type Recommendation struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	URL        string   `json:"url"`
	Skills     []string `json:"skills,omitempty"`
	MatchScore float64  `json:"match_score,omitempty"`
}
