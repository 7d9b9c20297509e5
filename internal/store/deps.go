package store

import (
	"context"
	"fmt"
	"time"
)

// AddDependency records that taskID cannot start until dependsOnID is
// completed. A task may not depend on itself, and an edge that would
// close a cycle is rejected so the dependency snapshot stays a DAG.
func (s *SQLiteStore) AddDependency(ctx context.Context, taskID, dependsOnID string) error {
	if taskID == dependsOnID {
		return fmt.Errorf("task cannot depend on itself: %s", taskID)
	}
	if err := s.parentExists(ctx, "tasks", taskID); err != nil {
		return err
	}
	if err := s.parentExists(ctx, "tasks", dependsOnID); err != nil {
		return err
	}

	edges, _, err := s.dependencyEdges(ctx)
	if err != nil {
		return err
	}
	if reachable(edges, dependsOnID, taskID) {
		return fmt.Errorf("dependency cycle: %s already depends on %s", dependsOnID, taskID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO task_dependencies (task_id, depends_on_id, created_at) VALUES (?, ?, ?)`,
		taskID, dependsOnID, now)
	return err
}

func (s *SQLiteStore) RemoveDependency(ctx context.Context, taskID, dependsOnID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM task_dependencies WHERE task_id = ? AND depends_on_id = ?`, taskID, dependsOnID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("dependency not found: %s -> %s", taskID, dependsOnID)
	}
	return nil
}

// Dependencies returns the ids a task depends on, in insertion order.
func (s *SQLiteStore) Dependencies(ctx context.Context, taskID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT depends_on_id FROM task_dependencies WHERE task_id = ? ORDER BY created_at, depends_on_id`, taskID)
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

// dependencyEdges loads the full dependency graph: outgoing edges per
// task, and the completed flag of every task that something depends on.
func (s *SQLiteStore) dependencyEdges(ctx context.Context) (map[string][]string, map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT td.task_id, td.depends_on_id, t.completed
		 FROM task_dependencies td
		 JOIN tasks t ON t.id = td.depends_on_id
		 ORDER BY td.created_at, td.depends_on_id`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	edges := map[string][]string{}
	completed := map[string]bool{}
	for rows.Next() {
		var from, to string
		var done int
		if err := rows.Scan(&from, &to, &done); err != nil {
			return nil, nil, err
		}
		edges[from] = append(edges[from], to)
		completed[to] = done != 0
	}
	return edges, completed, rows.Err()
}

// reachable reports whether to is reachable from from over the edges.
func reachable(edges map[string][]string, from, to string) bool {
	visited := map[string]bool{}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, edges[cur]...)
	}
	return false
}
