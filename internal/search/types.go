// Package search finds related literature for a topic, blending source
// relevance with citation weight and recency, and exports result sets
// for reference managers.
package search

import "context"

// Result is one literature search hit.
type Result struct {
	Title     string  `json:"title"`
	Authors   string  `json:"authors"`
	Year      string  `json:"year"`
	Venue     string  `json:"venue"`
	Summary   string  `json:"summary,omitempty"`
	Link      string  `json:"link,omitempty"`
	Citations int     `json:"citations"`
	Score     float64 `json:"score"`
}

// Source produces candidate results for a query.
type Source interface {
	Search(ctx context.Context, query string, max int) ([]Result, error)
	Name() string
}
