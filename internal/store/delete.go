package store

import (
	"context"
	"fmt"
)

// Deletes refuse to orphan children: a level can only be removed once
// everything under it is gone.

func (s *SQLiteStore) DeletePillar(ctx context.Context, pillarID string) error {
	var children int
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM areas WHERE pillar_id = ?`, pillarID).Scan(&children)
	if children > 0 {
		return fmt.Errorf("pillar %s has %d areas; delete them first", pillarID, children)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM pillars WHERE id = ?`, pillarID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pillar not found: %s", pillarID)
	}
	return nil
}

func (s *SQLiteStore) DeleteArea(ctx context.Context, areaID string) error {
	var children int
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE area_id = ?`, areaID).Scan(&children)
	if children > 0 {
		return fmt.Errorf("area %s has %d projects; delete them first", areaID, children)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, areaID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("area not found: %s", areaID)
	}
	return nil
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, projectID string) error {
	var children int
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE project_id = ?`, projectID).Scan(&children)
	if children > 0 {
		return fmt.Errorf("project %s has %d tasks; delete them first", projectID, children)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}
