package search

import (
	"context"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Relevance blend weights. Similarity dominates, citations and recency
// break ties between equally relevant papers.
const (
	weightSimilarity = 0.6
	weightCitations  = 0.25
	weightRecency    = 0.15
)

// Ranker scores results against a query. With an index it uses
// embedding similarity; without one it falls back to lexical overlap.
type Ranker struct {
	index   *SemanticIndex
	nowYear int
}

// NewRanker creates a Ranker. index may be nil.
func NewRanker(index *SemanticIndex) *Ranker {
	return &Ranker{index: index, nowYear: time.Now().Year()}
}

// Rank fills in each result's Score and returns the results sorted by
// score, highest first. The sort is stable so source order breaks ties.
func (r *Ranker) Rank(ctx context.Context, query string, results []Result) []Result {
	if len(results) == 0 {
		return results
	}

	sims := r.similarities(ctx, query, results)

	ranked := append([]Result(nil), results...)
	for i := range ranked {
		ranked[i].Score = round3(weightSimilarity*sims[i] +
			weightCitations*citationScore(ranked[i].Citations) +
			weightRecency*r.recencyScore(ranked[i].Year))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (r *Ranker) similarities(ctx context.Context, query string, results []Result) []float64 {
	if r.index != nil {
		docs := make([]string, len(results))
		for i, res := range results {
			docs[i] = res.Title + ". " + res.Summary
		}
		sims, err := r.index.Similarities(ctx, query, docs)
		if err == nil {
			return sims
		}
		log.Printf("search: semantic scoring failed, using lexical overlap: %v", err)
	}

	sims := make([]float64, len(results))
	for i, res := range results {
		sims[i] = lexicalSimilarity(query, res.Title+" "+res.Summary)
	}
	return sims
}

// lexicalSimilarity is the fraction of query tokens present in the text.
func lexicalSimilarity(query, text string) float64 {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	textTokens := make(map[string]bool)
	for _, tok := range tokenize(text) {
		textTokens[tok] = true
	}

	matched := 0
	for _, tok := range queryTokens {
		if textTokens[tok] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// citationScore compresses citation counts to [0, 1] on a log scale, so
// a handful of citations still registers and mega-cited classics don't
// drown out everything else.
func citationScore(citations int) float64 {
	if citations <= 0 {
		return 0
	}
	return math.Min(1, math.Log1p(float64(citations)/10))
}

// recencyScore decays with age. An unparseable year counts as ten years old.
func (r *Ranker) recencyScore(year string) float64 {
	age := 10
	if y, err := strconv.Atoi(year); err == nil && y > 0 {
		age = r.nowYear - y
		if age < 0 {
			age = 0
		}
	}
	return 1 / (1 + 0.1*float64(age))
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
