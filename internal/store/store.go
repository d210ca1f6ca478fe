package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Simplici0/auditcost/internal/costmodel"
)

// ErrNotFound is returned by Load when no input state has been saved yet.
var ErrNotFound = errors.New("input state not found")

// Record is the persisted input snapshot. Only the latest one is kept.
type Record struct {
	ID        string
	Input     costmodel.Input
	UpdatedAt time.Time
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore keeps the current input snapshot in the input_state singleton row.
type SQLStore struct {
	q Querier
}

// New returns a store backed by q.
func New(q Querier) *SQLStore {
	return &SQLStore{q: q}
}

// Load returns the saved snapshot or ErrNotFound.
func (s *SQLStore) Load(ctx context.Context) (Record, error) {
	var (
		rec       Record
		inputJSON string
		updatedAt string
	)
	err := s.q.QueryRowContext(ctx, `
		SELECT snapshot_id, input_json, updated_at
		FROM input_state
		WHERE id = 1
	`).Scan(&rec.ID, &inputJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("query input_state: %w", err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return Record{}, fmt.Errorf("decode input_state json: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse input_state updated_at: %w", err)
	}

	return rec, nil
}

// Save replaces the saved snapshot with rec.
func (s *SQLStore) Save(ctx context.Context, rec Record) error {
	inputJSON, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("encode input_state json: %w", err)
	}

	_, err = s.q.ExecContext(ctx, `
		INSERT INTO input_state (id, snapshot_id, input_json, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			snapshot_id = excluded.snapshot_id,
			input_json = excluded.input_json,
			updated_at = excluded.updated_at
	`, rec.ID, string(inputJSON), rec.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert input_state: %w", err)
	}

	return nil
}

// Ensure stores rec only when no snapshot exists yet and reports whether it did.
func (s *SQLStore) Ensure(ctx context.Context, rec Record) (bool, error) {
	var exists bool
	if err := s.q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM input_state WHERE id = 1)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check input_state existence: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := s.Save(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}
