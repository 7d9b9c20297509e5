package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string        `json:"db_path"`
	DBSizeBytes int64         `json:"db_size_bytes"`
	Pillars     int           `json:"pillars"`
	Areas       int           `json:"areas"`
	Projects    int           `json:"projects"`
	Tasks       int           `json:"tasks"`
	OpenTasks   int           `json:"open_tasks"`
	PerPillar   []PillarStats `json:"per_pillar,omitempty"`
}

// PillarStats holds per-pillar open-task counts.
type PillarStats struct {
	Name      string `json:"name"`
	OpenTasks int    `json:"open_tasks"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pillars`).Scan(&st.Pillars)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM areas`).Scan(&st.Areas)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&st.Projects)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&st.Tasks)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE completed = 0`).Scan(&st.OpenTasks)

	rows, err := s.db.QueryContext(ctx, `
		SELECT pl.name, COUNT(t.id)
		FROM pillars pl
		JOIN areas a ON a.pillar_id = pl.id
		JOIN projects p ON p.area_id = a.id
		JOIN tasks t ON t.project_id = p.id AND t.completed = 0
		GROUP BY pl.id, pl.name
		ORDER BY COUNT(t.id) DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ps PillarStats
		rows.Scan(&ps.Name, &ps.OpenTasks)
		st.PerPillar = append(st.PerPillar, ps)
	}

	return st, nil
}
