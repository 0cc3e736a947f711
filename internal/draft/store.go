package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paperdesk/internal/db"
)

// Record is one saved draft artifact.
type Record struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	PaperType string    `json:"paper_type"`
	LaTeX     string    `json:"latex"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists draft artifacts.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts a draft record. If rec.ID is empty a UUID is generated.
func (s *Store) Save(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, session_id, topic, title, paper_type, latex, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SessionID, rec.Topic, rec.Title, rec.PaperType, rec.LaTeX, rec.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("inserting draft: %w", err)
	}
	return rec.ID, nil
}

// List returns the drafts saved by a session, newest first.
func (s *Store) List(ctx context.Context, sessionID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, topic, title, paper_type, latex, created_at
		FROM drafts WHERE session_id = ?
		ORDER BY created_at DESC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Topic, &rec.Title, &rec.PaperType, &rec.LaTeX, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns one draft by id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, topic, title, paper_type, latex, created_at
		FROM drafts WHERE id = ?`, id).
		Scan(&rec.ID, &rec.SessionID, &rec.Topic, &rec.Title, &rec.PaperType, &rec.LaTeX, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("loading draft %s: %w", id, err)
	}
	return &rec, nil
}
