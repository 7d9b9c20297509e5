package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/model"
)

const taskColumns = `id, project_id, name, description, priority, due_date, scheduled_date, completed, completed_at, created_at`

func (s *SQLiteStore) CreateTask(ctx context.Context, p CreateTaskParams) (*model.Task, error) {
	priority, err := model.ParsePriority(p.Priority)
	if err != nil {
		return nil, err
	}
	if err := s.parentExists(ctx, "projects", p.ProjectID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	task := &model.Task{
		ID:            s.newID(),
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Description:   p.Description,
		Priority:      priority,
		DueDate:       p.DueDate,
		ScheduledDate: p.ScheduledDate,
		CreatedAt:     now,
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, project_id, name, description, priority, due_date, scheduled_date, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		task.ID, task.ProjectID, task.Name, nullString(task.Description), string(task.Priority),
		nullTime(task.DueDate), nullTime(task.ScheduledDate), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (s *SQLiteStore) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, taskID)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found: %s", taskID)
	}
	if err != nil {
		return nil, err
	}
	deps, err := s.Dependencies(ctx, taskID)
	if err != nil {
		return nil, err
	}
	t.DependencyIDs = deps
	return &t, nil
}

func (s *SQLiteStore) ListTasks(ctx context.Context, p ListTasksParams) ([]model.Task, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	where := []string{"1=1"}
	var args []interface{}

	if !p.IncludeCompleted {
		where = append(where, "completed = 0")
	}
	if p.ProjectID != "" {
		where = append(where, "project_id = ?")
		args = append(args, p.ProjectID)
	}
	if p.Priority != "" {
		priority, err := model.ParsePriority(p.Priority)
		if err != nil {
			return nil, err
		}
		where = append(where, "priority = ?")
		args = append(args, string(priority))
	}
	if p.Search != "" {
		where = append(where, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern)
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC LIMIT ?`,
		taskColumns, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return s.attachDependencies(ctx, tasks)
}

func (s *SQLiteStore) UpdateTask(ctx context.Context, taskID string, p UpdateTaskParams) (*model.Task, error) {
	var set []string
	var args []interface{}

	if p.Name != "" {
		set = append(set, "name = ?")
		args = append(args, p.Name)
	}
	if p.Description != "" {
		set = append(set, "description = ?")
		args = append(args, p.Description)
	}
	if p.Priority != "" {
		priority, err := model.ParsePriority(p.Priority)
		if err != nil {
			return nil, err
		}
		set = append(set, "priority = ?")
		args = append(args, string(priority))
	}
	if p.ClearDueDate {
		set = append(set, "due_date = NULL")
	} else if p.DueDate != nil {
		set = append(set, "due_date = ?")
		args = append(args, p.DueDate.UTC().Format(time.RFC3339))
	}

	if len(set) == 0 {
		return s.GetTask(ctx, taskID)
	}

	args = append(args, taskID)
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ?`, strings.Join(set, ", ")), args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task not found: %s", taskID)
	}
	return s.GetTask(ctx, taskID)
}

func (s *SQLiteStore) CompleteTask(ctx context.Context, taskID string) (*model.Task, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ? AND completed = 0`,
		now.Format(time.RFC3339), taskID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task not found or already completed: %s", taskID)
	}
	return s.GetTask(ctx, taskID)
}

// ReopenTask clears the completed flag, putting the task back into
// scoring and focus selection.
func (s *SQLiteStore) ReopenTask(ctx context.Context, taskID string) (*model.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 0, completed_at = NULL WHERE id = ?`, taskID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task not found: %s", taskID)
	}
	return s.GetTask(ctx, taskID)
}

func (s *SQLiteStore) DeleteTask(ctx context.Context, taskID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM task_dependencies WHERE task_id = ? OR depends_on_id = ?`, taskID, taskID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM focus_pins WHERE task_id = ?`, taskID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task not found: %s", taskID)
	}
	return tx.Commit()
}

// attachDependencies loads dependency ids for a batch of tasks.
func (s *SQLiteStore) attachDependencies(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	if len(tasks) == 0 {
		return tasks, nil
	}
	deps, _, err := s.dependencyEdges(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].DependencyIDs = deps[tasks[i].ID]
	}
	return tasks, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row scanner) (model.Task, error) {
	var t model.Task
	var description, dueDate, scheduledDate, completedAt sql.NullString
	var completed int
	var createdAt string

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Name, &description, &t.Priority,
		&dueDate, &scheduledDate, &completed, &completedAt, &createdAt,
	)
	if err != nil {
		return t, err
	}

	t.Completed = completed != 0
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if description.Valid {
		t.Description = description.String
	}
	if dueDate.Valid {
		d, _ := time.Parse(time.RFC3339, dueDate.String)
		t.DueDate = &d
	}
	if scheduledDate.Valid {
		d, _ := time.Parse(time.RFC3339, scheduledDate.String)
		t.ScheduledDate = &d
	}
	if completedAt.Valid {
		d, _ := time.Parse(time.RFC3339, completedAt.String)
		t.CompletedAt = &d
	}
	return t, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
