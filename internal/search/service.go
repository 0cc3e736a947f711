package search

import (
	"context"
	"log"
	"sync"
)

// Service runs searches and remembers each session's last result set
// for export.
type Service struct {
	source     Source
	fallback   Source
	ranker     *Ranker
	maxResults int

	mu   sync.Mutex
	last map[string][]Result
}

// NewService creates a Service. source may be nil, in which case every
// search uses the deterministic fallback.
func NewService(source Source, ranker *Ranker, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = 10
	}
	if ranker == nil {
		ranker = NewRanker(nil)
	}
	return &Service{
		source:     source,
		fallback:   MockSource{},
		ranker:     ranker,
		maxResults: maxResults,
		last:       make(map[string][]Result),
	}
}

// Search queries the configured source, falls back to canned results on
// failure, ranks, and records the results for the session.
func (s *Service) Search(ctx context.Context, sessionID, query string) ([]Result, error) {
	results := s.fetch(ctx, query)
	ranked := s.ranker.Rank(ctx, query, results)

	s.mu.Lock()
	s.last[sessionID] = ranked
	s.mu.Unlock()

	return ranked, nil
}

func (s *Service) fetch(ctx context.Context, query string) []Result {
	if s.source != nil {
		results, err := s.source.Search(ctx, query, s.maxResults)
		if err == nil && len(results) > 0 {
			return results
		}
		if err != nil {
			log.Printf("search: %s source failed, using fallback results: %v", s.source.Name(), err)
		}
	}

	results, err := s.fallback.Search(ctx, query, s.maxResults)
	if err != nil {
		// MockSource never fails; keep the API total anyway.
		log.Printf("search: fallback source failed: %v", err)
		return nil
	}
	return results
}

// LastResults returns the session's most recent ranked results.
func (s *Service) LastResults(sessionID string) []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[sessionID]
}
