package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/aurumlife/aurum/internal/scoring"
)

// TodaySnapshot joins every incomplete task in an active project with
// its project, area, and the completion state of its dependencies:
// everything the scoring engine needs, in one pass.
func (s *SQLiteStore) TodaySnapshot(ctx context.Context) ([]scoring.TaskInput, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.project_id, t.name, t.description, t.priority,
		       t.due_date, t.scheduled_date, t.created_at,
		       p.id, p.area_id, p.name, p.priority, p.status,
		       a.id, a.pillar_id, a.name, a.importance
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN areas a ON a.id = p.area_id
		WHERE t.completed = 0 AND p.status = 'active'
		ORDER BY t.created_at, t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inputs []scoring.TaskInput
	for rows.Next() {
		in, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	edges, completed, err := s.dependencyEdges(ctx)
	if err != nil {
		return nil, err
	}
	for i := range inputs {
		deps := edges[inputs[i].Task.ID]
		if len(deps) == 0 {
			continue
		}
		inputs[i].Task.DependencyIDs = deps
		inputs[i].DepsCompleted = make(map[string]bool, len(deps))
		for _, dep := range deps {
			inputs[i].DepsCompleted[dep] = completed[dep]
		}
	}

	return inputs, nil
}

func scanSnapshotRow(row scanner) (scoring.TaskInput, error) {
	var in scoring.TaskInput
	var description, dueDate, scheduledDate sql.NullString
	var createdAt string

	err := row.Scan(
		&in.Task.ID, &in.Task.ProjectID, &in.Task.Name, &description, &in.Task.Priority,
		&dueDate, &scheduledDate, &createdAt,
		&in.Project.ID, &in.Project.AreaID, &in.Project.Name, &in.Project.Priority, &in.Project.Status,
		&in.Area.ID, &in.Area.PillarID, &in.Area.Name, &in.Area.Importance,
	)
	if err != nil {
		return in, err
	}

	in.Task.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if description.Valid {
		in.Task.Description = description.String
	}
	if dueDate.Valid {
		d, _ := time.Parse(time.RFC3339, dueDate.String)
		in.Task.DueDate = &d
	}
	if scheduledDate.Valid {
		d, _ := time.Parse(time.RFC3339, scheduledDate.String)
		in.Task.ScheduledDate = &d
	}
	return in, nil
}
