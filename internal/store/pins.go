package store

import (
	"context"
	"fmt"
	"time"
)

// Pins implement the manual override on top of the algorithmic focus
// order. Pins are scoped to a calendar day: a new day reads an empty
// pin set and the list starts auto-ordered again.

// DayKey formats a timestamp as the pin-scoping calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Pin replaces the pinned prefix for the given day with ids, in order.
func (s *SQLiteStore) Pin(ctx context.Context, day string, ids []string) error {
	for _, id := range ids {
		if err := s.parentExists(ctx, "tasks", id); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM focus_pins WHERE day = ?`, day); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, id := range ids {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO focus_pins (day, task_id, position, created_at) VALUES (?, ?, ?, ?)`,
			day, id, i, now)
		if err != nil {
			return fmt.Errorf("insert pin: %w", err)
		}
	}
	return tx.Commit()
}

// Pins returns the pinned task ids for a day, in pinned order.
func (s *SQLiteStore) Pins(ctx context.Context, day string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id FROM focus_pins WHERE day = ? ORDER BY position`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearPins drops the override for a day, returning it to auto order.
func (s *SQLiteStore) ClearPins(ctx context.Context, day string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM focus_pins WHERE day = ?`, day)
	return err
}
