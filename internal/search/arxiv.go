package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultArxivBaseURL = "https://export.arxiv.org"

// ArxivSource queries the arXiv Atom API.
type ArxivSource struct {
	baseURL string
	client  *http.Client
}

// NewArxivSource creates an ArxivSource against the public API.
func NewArxivSource() *ArxivSource {
	return &ArxivSource{
		baseURL: defaultArxivBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Name implements Source.
func (s *ArxivSource) Name() string { return "arxiv" }

// Search implements Source against /api/query, sorted by API relevance.
// Scoring happens later in the ranker.
func (s *ArxivSource) Search(ctx context.Context, query string, max int) ([]Result, error) {
	if max <= 0 {
		max = 10
	}

	params := url.Values{}
	params.Set("search_query", fmt.Sprintf("all:%q", query))
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", max))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	endpoint := s.baseURL + "/api/query?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying arxiv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("arxiv API error: %s (%s)", resp.Status, string(body))
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding arxiv response: %w", err)
	}

	results := make([]Result, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		results = append(results, entry.toResult())
	}
	return results, nil
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string       `xml:"id"`
	Title      string       `xml:"title"`
	Summary    string       `xml:"summary"`
	Published  string       `xml:"published"`
	Authors    []atomAuthor `xml:"author"`
	JournalRef string       `xml:"journal_ref"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

var collapseWhitespace = regexp.MustCompile(`\s+`)

func (e atomEntry) toResult() Result {
	names := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		names = append(names, strings.TrimSpace(a.Name))
	}

	year := ""
	if len(e.Published) >= 4 {
		year = e.Published[:4]
	}

	venue := strings.TrimSpace(e.JournalRef)
	if venue == "" {
		venue = "arXiv"
	}

	return Result{
		Title:   normalize(e.Title),
		Authors: strings.Join(names, ", "),
		Year:    year,
		Venue:   venue,
		Summary: normalize(e.Summary),
		Link:    strings.TrimSpace(e.ID),
	}
}

func normalize(s string) string {
	return collapseWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
