package search

import (
	"context"
	"encoding/csv"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMockSourceDeterministic(t *testing.T) {
	ctx := context.Background()
	first, err := MockSource{}.Search(ctx, "graph neural networks", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	second, _ := MockSource{}.Search(ctx, "graph neural networks", 5)

	if len(first) != 5 {
		t.Fatalf("got %d results, want 5", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs between runs", i)
		}
		if !strings.Contains(first[i].Title, "Graph Neural Networks") {
			t.Errorf("result %d title omits the query: %q", i, first[i].Title)
		}
	}
}

func TestLexicalSimilarity(t *testing.T) {
	tests := []struct {
		query string
		text  string
		want  float64
	}{
		{"graph networks", "A survey of graph networks", 1},
		{"graph networks", "graph theory fundamentals", 0.5},
		{"graph networks", "unrelated paper", 0},
		{"", "anything", 0},
	}
	for _, tt := range tests {
		if got := lexicalSimilarity(tt.query, tt.text); got != tt.want {
			t.Errorf("lexicalSimilarity(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
		}
	}
}

func TestCitationScore(t *testing.T) {
	if got := citationScore(0); got != 0 {
		t.Errorf("citationScore(0) = %v, want 0", got)
	}
	if citationScore(10) >= citationScore(100) {
		t.Error("citation score not monotonic")
	}
	if got := citationScore(1000000); got != 1 {
		t.Errorf("citationScore(1000000) = %v, want cap at 1", got)
	}
}

func TestRecencyScore(t *testing.T) {
	r := &Ranker{nowYear: 2025}
	tests := []struct {
		year string
		want float64
	}{
		{"2025", 1},
		{"2015", 0.5},
		{"not-a-year", 0.5},
		{"", 0.5},
	}
	for _, tt := range tests {
		if got := r.recencyScore(tt.year); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("recencyScore(%q) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestRankBlendsComponents(t *testing.T) {
	r := &Ranker{nowYear: 2025}
	results := []Result{
		{Title: "graph networks explained", Year: "2025", Citations: 0},
		{Title: "completely unrelated", Year: "2025", Citations: 0},
	}

	ranked := r.Rank(context.Background(), "graph networks", results)

	// Full lexical match, zero citations, current year:
	// 0.6*1 + 0.25*0 + 0.15*1 = 0.75.
	if ranked[0].Score != 0.75 {
		t.Errorf("top score = %v, want 0.75", ranked[0].Score)
	}
	if ranked[0].Title != "graph networks explained" {
		t.Errorf("wrong result on top: %q", ranked[0].Title)
	}
	if ranked[1].Score >= ranked[0].Score {
		t.Error("unrelated result not ranked below the match")
	}
}

func TestRankStableOnTies(t *testing.T) {
	r := &Ranker{nowYear: 2025}
	results := []Result{
		{Title: "alpha", Year: "2020", Citations: 5},
		{Title: "beta", Year: "2020", Citations: 5},
	}
	ranked := r.Rank(context.Background(), "zzz", results)
	if ranked[0].Title != "alpha" || ranked[1].Title != "beta" {
		t.Error("tied results reordered")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	r := &Ranker{nowYear: 2025}
	results := []Result{{Title: "graph networks", Year: "2025"}}
	r.Rank(context.Background(), "graph networks", results)
	if results[0].Score != 0 {
		t.Error("input slice was mutated")
	}
}

const sampleAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <title>Adaptive  Routing in
  Overlay Networks</title>
    <summary>We study adaptive routing.</summary>
    <published>2024-01-02T00:00:00Z</published>
    <author><name>Jane Smith</name></author>
    <author><name>Bob Lee</name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2203.00002v2</id>
    <title>Overlay Measurement</title>
    <summary>Measurements at scale.</summary>
    <published>2022-03-04T00:00:00Z</published>
    <author><name>Ada Chen</name></author>
    <journal_ref>Transactions on Networking</journal_ref>
  </entry>
</feed>`

func TestArxivSourceSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/query" {
			t.Errorf("path = %q, want /api/query", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("search_query")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(sampleAtomFeed))
	}))
	defer srv.Close()

	source := &ArxivSource{baseURL: srv.URL, client: &http.Client{Timeout: 5 * time.Second}}
	results, err := source.Search(context.Background(), "overlay networks", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != `all:"overlay networks"` {
		t.Errorf("search_query = %q", gotQuery)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	first := results[0]
	if first.Title != "Adaptive Routing in Overlay Networks" {
		t.Errorf("title not normalized: %q", first.Title)
	}
	if first.Authors != "Jane Smith, Bob Lee" {
		t.Errorf("authors = %q", first.Authors)
	}
	if first.Year != "2024" {
		t.Errorf("year = %q", first.Year)
	}
	if first.Venue != "arXiv" {
		t.Errorf("venue = %q, want arXiv default", first.Venue)
	}
	if results[1].Venue != "Transactions on Networking" {
		t.Errorf("journal_ref not used as venue: %q", results[1].Venue)
	}
}

func TestArxivSourceErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	source := &ArxivSource{baseURL: srv.URL, client: &http.Client{Timeout: 5 * time.Second}}
	if _, err := source.Search(context.Background(), "anything", 5); err == nil {
		t.Fatal("want error for 503 response")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	results := []Result{
		{Title: `Quotes "inside"`, Authors: "Smith, J.", Year: "2020", Venue: "NeurIPS", Citations: 12, Score: 0.75, Link: "https://example.org/1"},
		{Title: "Second, with comma", Authors: "Chen, A.", Year: "2021", Venue: "ICML", Citations: 3, Score: 0.5},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[0][0] != "title" || records[0][6] != "link" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != `Quotes "inside"` {
		t.Errorf("quoting lost: %q", records[1][0])
	}
	if records[2][5] != "0.500" {
		t.Errorf("score formatting = %q, want 0.500", records[2][5])
	}
}

func TestServiceFallsBackOnSourceFailure(t *testing.T) {
	svc := NewService(failingSource{}, &Ranker{nowYear: 2025}, 5)

	results, err := svc.Search(context.Background(), "s1", "swarm robotics")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no fallback results")
	}

	last := svc.LastResults("s1")
	if len(last) != len(results) {
		t.Errorf("LastResults has %d entries, want %d", len(last), len(results))
	}
	if svc.LastResults("other-session") != nil {
		t.Error("results leaked across sessions")
	}
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) Search(context.Context, string, int) ([]Result, error) {
	return nil, context.DeadlineExceeded
}
