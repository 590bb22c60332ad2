package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
)

// savedSlot is the fixed key of the single saved-view slot.
const savedSlot = "latest"

// timeLayout keeps a fixed-width fraction so that lexicographic ordering of
// the stored text matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// History event types, matching the labels the original service logged.
const (
	EventAnalyzed      = "Document Analyzed"
	EventQuestionAsked = "Question Asked"
	EventViewed        = "Analysis Viewed"
	EventSaved         = "Analysis Saved"
)

// HistoryEvent is one row of the local activity log.
type HistoryEvent struct {
	ID           string    `json:"id"`
	EventType    string    `json:"event_type"`
	DocumentName string    `json:"document_name"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Store provides the saved-view slot and the history log.
type Store struct {
	db *DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *DB) *Store {
	return &Store{db: database}
}

// SaveView writes the analysis result into the slot, replacing any previous
// occupant. The payload is the same JSON shape the result travels in.
func (s *Store) SaveView(ctx context.Context, res legalmind.AnalysisResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshalling saved view: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_views (slot, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		savedSlot, string(payload), time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("writing saved view: %w", err)
	}
	return nil
}

// TakeView consumes the saved slot: it returns the stored result and deletes
// it, so a second call yields (nil, nil). An empty slot is not an error.
// Delete-with-returning keeps take atomic, so concurrent takers cannot both
// receive the slot.
func (s *Store) TakeView(ctx context.Context) (*legalmind.AnalysisResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM saved_views WHERE slot = ? RETURNING payload`, savedSlot,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("taking saved view: %w", err)
	}

	var res legalmind.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decoding saved view: %w", err)
	}
	return &res, nil
}

// LogEvent appends one history event.
func (s *Store) LogEvent(ctx context.Context, eventType, documentName string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history_events (id, event_type, document_name, created_at)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(), eventType, documentName,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting history event: %w", err)
	}
	return nil
}

// History returns the most recent events, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]HistoryEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_type, document_name, created_at
		FROM history_events ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var events []HistoryEvent
	for rows.Next() {
		var ev HistoryEvent
		// Scan straight into time.Time; the DATETIME column means the driver
		// hands back a parsed value, not the stored text.
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.DocumentName, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
