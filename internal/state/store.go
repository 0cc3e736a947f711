// Package state persists per-session workspace values such as the
// current topic, working title, outline and generated LaTeX. Values are
// stored as opaque strings keyed by (session, key) so the web views and
// the JSON API share one source of truth.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"paperdesk/internal/db"
)

// Well-known workspace keys. Arbitrary keys are also accepted through
// the API; these are the ones the views and the draft pipeline use.
const (
	KeyTopic       = "topic"
	KeyTitle       = "paper_title"
	KeyOutline     = "paper_outline"
	KeyPaperType   = "paper_type"
	KeyLaTeX       = "paper_latex"
	KeyAuthor      = "author_name"
	KeyInstitution = "institution"
	KeySections    = "paper_sections" // JSON map of section name to body
	KeyOrder       = "paper_order"    // JSON array of section names
	KeyCompiled    = "paper_compiled" // "true" once the preview was compiled
)

// Store reads and writes workspace state for sessions.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the value stored for a session key. A missing key returns
// the empty string with no error.
func (s *Store) Get(ctx context.Context, sessionID, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM workspace_state WHERE session_id = ? AND key = ?`,
		sessionID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading state %q: %w", key, err)
	}
	return value, nil
}

// Set stores a value for a session key, replacing any previous value.
func (s *Store) Set(ctx context.Context, sessionID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workspace_state (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		sessionID, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storing state %q: %w", key, err)
	}
	return nil
}

// Delete removes a session key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, sessionID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM workspace_state WHERE session_id = ? AND key = ?`,
		sessionID, key,
	)
	if err != nil {
		return fmt.Errorf("deleting state %q: %w", key, err)
	}
	return nil
}

// All returns every key/value pair stored for a session.
func (s *Store) All(ctx context.Context, sessionID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM workspace_state WHERE session_id = ?`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing state: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning state row: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

// Clear removes all state for a session.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM workspace_state WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	return nil
}

// Topic returns the session's research topic.
func (s *Store) Topic(ctx context.Context, sessionID string) (string, error) {
	return s.Get(ctx, sessionID, KeyTopic)
}

// SetTopic records the session's research topic.
func (s *Store) SetTopic(ctx context.Context, sessionID, topic string) error {
	return s.Set(ctx, sessionID, KeyTopic, topic)
}

// Title returns the working paper title.
func (s *Store) Title(ctx context.Context, sessionID string) (string, error) {
	return s.Get(ctx, sessionID, KeyTitle)
}

// Outline returns the working outline in Markdown form.
func (s *Store) Outline(ctx context.Context, sessionID string) (string, error) {
	return s.Get(ctx, sessionID, KeyOutline)
}

// PaperType returns the selected paper type, defaulting to "standard".
func (s *Store) PaperType(ctx context.Context, sessionID string) (string, error) {
	value, err := s.Get(ctx, sessionID, KeyPaperType)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "standard", nil
	}
	return value, nil
}

// LaTeX returns the most recently formatted document.
func (s *Store) LaTeX(ctx context.Context, sessionID string) (string, error) {
	return s.Get(ctx, sessionID, KeyLaTeX)
}
