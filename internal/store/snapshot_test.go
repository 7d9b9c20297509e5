package store

import (
	"context"
	"testing"
)

func TestTodaySnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	pillar, area, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a", Priority: "high"})
	b, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "b"})
	s.AddDependency(ctx, b.ID, a.ID)

	snapshot, err := s.TodaySnapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(snapshot))
	}

	for _, in := range snapshot {
		if in.Project.ID != project.ID || in.Area.ID != area.ID {
			t.Errorf("ancestors not resolved: %+v", in)
		}
		if in.Area.PillarID != pillar.ID {
			t.Errorf("area pillar mismatch: %q", in.Area.PillarID)
		}
		if in.Area.Importance != 5 {
			t.Errorf("expected area importance 5, got %d", in.Area.Importance)
		}
	}

	// b depends on a, which is incomplete.
	var found bool
	for _, in := range snapshot {
		if in.Task.ID == b.ID {
			found = true
			if len(in.Task.DependencyIDs) != 1 || in.Task.DependencyIDs[0] != a.ID {
				t.Errorf("dependency ids missing: %v", in.Task.DependencyIDs)
			}
			if in.DepsCompleted[a.ID] {
				t.Error("incomplete dependency reported completed")
			}
		}
	}
	if !found {
		t.Fatal("task b missing from snapshot")
	}

	// Completing a flips b's dependency state and drops a itself.
	s.CompleteTask(ctx, a.ID)
	snapshot, _ = s.TodaySnapshot(ctx)
	if len(snapshot) != 1 || snapshot[0].Task.ID != b.ID {
		t.Fatalf("expected only b after completing a, got %d inputs", len(snapshot))
	}
	if !snapshot[0].DepsCompleted[a.ID] {
		t.Error("completed dependency still reported incomplete")
	}
}

func TestTodaySnapshotExcludesArchivedProjects(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, area, project := newHierarchy(t, s)
	archived, _ := s.CreateProject(ctx, CreateProjectParams{AreaID: area.ID, Name: "Old", Priority: "high"})

	s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "keep"})
	s.CreateTask(ctx, CreateTaskParams{ProjectID: archived.ID, Name: "drop"})
	s.ArchiveProject(ctx, archived.ID)

	snapshot, err := s.TodaySnapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 1 || snapshot[0].Task.Name != "keep" {
		t.Errorf("archived project tasks must not appear: %+v", snapshot)
	}
}
