package store

import (
	"context"
	"database/sql"
	"time"
)

// DailySummary holds the day's progress for evening reflection.
type DailySummary struct {
	Date                string `json:"date"`
	CompletedCount      int    `json:"completed_count"`
	ProjectsTouched     int    `json:"projects_touched"`
	PendingHighPriority int    `json:"pending_high_priority"`
	TopProjectID        string `json:"top_project_id,omitempty"`
	TopProjectName      string `json:"top_project_name,omitempty"`
}

// DailySummary reports completions since the start of now's calendar
// day, how many projects they touched, and how many high-priority
// tasks are due or overdue and still open.
func (s *SQLiteStore) DailySummary(ctx context.Context, now time.Time) (*DailySummary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		UTC().Format(time.RFC3339)

	sum := &DailySummary{Date: DayKey(now)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT project_id) FROM tasks
		 WHERE completed = 1 AND completed_at >= ?`, dayStart).
		Scan(&sum.CompletedCount, &sum.ProjectsTouched)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks
		 WHERE completed = 0 AND priority = 'high' AND due_date IS NOT NULL AND due_date <= ?`,
		now.UTC().Format(time.RFC3339)).Scan(&sum.PendingHighPriority)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT p.id, p.name FROM tasks t
		 JOIN projects p ON p.id = t.project_id
		 WHERE t.completed = 1 AND t.completed_at >= ?
		 GROUP BY p.id, p.name
		 ORDER BY COUNT(*) DESC, p.id
		 LIMIT 1`, dayStart).Scan(&sum.TopProjectID, &sum.TopProjectName)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	return sum, nil
}
