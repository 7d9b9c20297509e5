package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/model"
)

// Export is the portable snapshot of a whole hierarchy. Task
// dependency ids travel inside each task.
type Export struct {
	Pillars  []model.Pillar  `json:"pillars"`
	Areas    []model.Area    `json:"areas"`
	Projects []model.Project `json:"projects"`
	Tasks    []model.Task    `json:"tasks"`
}

// ExportAll returns the full hierarchy, completed tasks included.
func (s *SQLiteStore) ExportAll(ctx context.Context) (*Export, error) {
	out := &Export{}

	var err error
	if out.Pillars, err = s.ListPillars(ctx); err != nil {
		return nil, err
	}
	if out.Areas, err = s.ListAreas(ctx, ""); err != nil {
		return nil, err
	}
	if out.Projects, err = s.ListProjects(ctx, "", true); err != nil {
		return nil, err
	}
	if out.Tasks, err = s.ListTasks(ctx, ListTasksParams{IncludeCompleted: true, Limit: 1000000}); err != nil {
		return nil, err
	}
	return out, nil
}

// Import inserts an exported hierarchy, preserving ids. Records whose
// id already exists are skipped. Returns the number of rows inserted.
func (s *SQLiteStore) Import(ctx context.Context, e *Export) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	imported := 0
	count := func(res sql.Result) {
		n, _ := res.RowsAffected()
		imported += int(n)
	}

	for _, p := range e.Pillars {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO pillars (id, name, importance, created_at) VALUES (?, ?, ?, ?)`,
			p.ID, p.Name, p.Importance, p.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, fmt.Errorf("import pillar %s: %w", p.ID, err)
		}
		count(res)
	}
	for _, a := range e.Areas {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO areas (id, pillar_id, name, importance, created_at) VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.PillarID, a.Name, a.Importance, a.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, fmt.Errorf("import area %s: %w", a.ID, err)
		}
		count(res)
	}
	for _, p := range e.Projects {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO projects (id, area_id, name, priority, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.AreaID, p.Name, string(p.Priority), string(p.Status), p.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, fmt.Errorf("import project %s: %w", p.ID, err)
		}
		count(res)
	}
	for _, t := range e.Tasks {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO tasks (id, project_id, name, description, priority, due_date, scheduled_date, completed, completed_at, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.ProjectID, t.Name, nullString(t.Description), string(t.Priority),
			nullTime(t.DueDate), nullTime(t.ScheduledDate), boolInt(t.Completed),
			nullTime(t.CompletedAt), t.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, fmt.Errorf("import task %s: %w", t.ID, err)
		}
		count(res)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, t := range e.Tasks {
		for _, dep := range t.DependencyIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO task_dependencies (task_id, depends_on_id, created_at) VALUES (?, ?, ?)`,
				t.ID, dep, now)
			if err != nil {
				return imported, fmt.Errorf("import dependency %s -> %s: %w", t.ID, dep, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return imported, err
	}
	return imported, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
