package search

import (
	"context"
	"fmt"
	"strings"
)

// mockPapers are the deterministic offline results. Titles interpolate
// the query so the fallback still reads like a real result set.
var mockPapers = []struct {
	titleTmpl string
	authors   string
	venue     string
	year      string
	citations int
}{
	{"A Survey of %s", "Chen, L., Nakamura, K.", "ACM Computing Surveys", "2024", 312},
	{"%s: Methods and Applications", "Okafor, A., Bauer, M., Singh, R.", "Nature Machine Intelligence", "2023", 540},
	{"Benchmarking Approaches to %s", "Ivanova, P., Torres, D.", "NeurIPS", "2023", 128},
	{"Revisiting %s in Practice", "Hargreaves, T.", "IEEE Transactions", "2021", 450},
	{"Early Perspectives on %s", "Lindqvist, E., Rossi, F.", "Journal of Research", "2015", 890},
	{"Emerging Directions in %s", "Park, S., Mbeki, T.", "arXiv", "2025", 12},
}

// MockSource serves canned results for offline use and tests.
type MockSource struct{}

// Name implements Source.
func (MockSource) Name() string { return "mock" }

// Search implements Source with deterministic results derived from the query.
func (MockSource) Search(_ context.Context, query string, max int) ([]Result, error) {
	if max <= 0 || max > len(mockPapers) {
		max = len(mockPapers)
	}

	results := make([]Result, 0, max)
	for i, p := range mockPapers[:max] {
		results = append(results, Result{
			Title:     fmt.Sprintf(p.titleTmpl, titleCase(query)),
			Authors:   p.authors,
			Year:      p.year,
			Venue:     p.venue,
			Summary:   fmt.Sprintf("This paper examines %s, reporting results across standard benchmarks and discussing open problems.", query),
			Link:      fmt.Sprintf("https://example.org/papers/%d", i+1),
			Citations: p.citations,
		})
	}
	return results, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
