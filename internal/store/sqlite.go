package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/aurumlife/aurum/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pillars (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		importance  INTEGER NOT NULL DEFAULT 3,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS areas (
		id          TEXT PRIMARY KEY,
		pillar_id   TEXT NOT NULL REFERENCES pillars(id),
		name        TEXT NOT NULL,
		importance  INTEGER NOT NULL DEFAULT 3,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_areas_pillar ON areas(pillar_id);

	CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		area_id     TEXT NOT NULL REFERENCES areas(id),
		name        TEXT NOT NULL,
		priority    TEXT NOT NULL DEFAULT 'medium',
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_area ON projects(area_id);
	CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);

	CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id),
		name            TEXT NOT NULL,
		description     TEXT,
		priority        TEXT NOT NULL DEFAULT 'medium',
		due_date        TEXT,
		scheduled_date  TEXT,
		completed       INTEGER NOT NULL DEFAULT 0,
		completed_at    TEXT,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
	CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);

	CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id),
		depends_on_id TEXT NOT NULL REFERENCES tasks(id),
		created_at    TEXT NOT NULL,
		PRIMARY KEY (task_id, depends_on_id)
	);
	CREATE INDEX IF NOT EXISTS idx_deps_depends_on ON task_dependencies(depends_on_id);

	CREATE TABLE IF NOT EXISTS focus_pins (
		day        TEXT NOT NULL,
		task_id    TEXT NOT NULL REFERENCES tasks(id),
		position   INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (day, task_id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func validateImportance(v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("importance must be 1-5, got %d", v)
	}
	return nil
}

func (s *SQLiteStore) parentExists(ctx context.Context, table, id string) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table), id).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s not found: %s", table[:len(table)-1], id)
	}
	return err
}

func (s *SQLiteStore) CreatePillar(ctx context.Context, p CreatePillarParams) (*model.Pillar, error) {
	if err := validateImportance(p.Importance); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	pillar := &model.Pillar{
		ID:         s.newID(),
		Name:       p.Name,
		Importance: p.Importance,
		CreatedAt:  now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pillars (id, name, importance, created_at) VALUES (?, ?, ?, ?)`,
		pillar.ID, pillar.Name, pillar.Importance, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert pillar: %w", err)
	}
	return pillar, nil
}

func (s *SQLiteStore) CreateArea(ctx context.Context, p CreateAreaParams) (*model.Area, error) {
	if err := validateImportance(p.Importance); err != nil {
		return nil, err
	}
	if err := s.parentExists(ctx, "pillars", p.PillarID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	area := &model.Area{
		ID:         s.newID(),
		PillarID:   p.PillarID,
		Name:       p.Name,
		Importance: p.Importance,
		CreatedAt:  now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO areas (id, pillar_id, name, importance, created_at) VALUES (?, ?, ?, ?, ?)`,
		area.ID, area.PillarID, area.Name, area.Importance, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert area: %w", err)
	}
	return area, nil
}

func (s *SQLiteStore) CreateProject(ctx context.Context, p CreateProjectParams) (*model.Project, error) {
	priority, err := model.ParsePriority(p.Priority)
	if err != nil {
		return nil, err
	}
	if err := s.parentExists(ctx, "areas", p.AreaID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	project := &model.Project{
		ID:        s.newID(),
		AreaID:    p.AreaID,
		Name:      p.Name,
		Priority:  priority,
		Status:    model.ProjectActive,
		CreatedAt: now,
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, area_id, name, priority, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		project.ID, project.AreaID, project.Name, string(project.Priority), string(project.Status), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return project, nil
}

// ArchiveProject moves a project to the archived status. Its tasks stop
// appearing in snapshots but remain stored.
func (s *SQLiteStore) ArchiveProject(ctx context.Context, projectID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET status = ? WHERE id = ?`, string(model.ProjectArchived), projectID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}

func (s *SQLiteStore) ListPillars(ctx context.Context) ([]model.Pillar, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, importance, created_at FROM pillars ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pillars []model.Pillar
	for rows.Next() {
		var p model.Pillar
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Importance, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		pillars = append(pillars, p)
	}
	return pillars, rows.Err()
}

func (s *SQLiteStore) ListAreas(ctx context.Context, pillarID string) ([]model.Area, error) {
	query := `SELECT id, pillar_id, name, importance, created_at FROM areas`
	var args []interface{}
	if pillarID != "" {
		query += ` WHERE pillar_id = ?`
		args = append(args, pillarID)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []model.Area
	for rows.Next() {
		var a model.Area
		var createdAt string
		if err := rows.Scan(&a.ID, &a.PillarID, &a.Name, &a.Importance, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (s *SQLiteStore) ListProjects(ctx context.Context, areaID string, includeArchived bool) ([]model.Project, error) {
	query := `SELECT id, area_id, name, priority, status, created_at FROM projects WHERE 1=1`
	var args []interface{}
	if areaID != "" {
		query += ` AND area_id = ?`
		args = append(args, areaID)
	}
	if !includeArchived {
		query += ` AND status = ?`
		args = append(args, string(model.ProjectActive))
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var createdAt string
		if err := rows.Scan(&p.ID, &p.AreaID, &p.Name, &p.Priority, &p.Status, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
