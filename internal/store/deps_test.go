package store

import (
	"context"
	"reflect"
	"testing"
)

func TestAddDependency(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a"})
	b, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "b"})
	c, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "c"})

	if err := s.AddDependency(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("add dependency: %v", err)
	}
	if err := s.AddDependency(ctx, a.ID, c.ID); err != nil {
		t.Fatalf("add dependency: %v", err)
	}

	deps, err := s.Dependencies(ctx, a.ID)
	if err != nil {
		t.Fatalf("dependencies: %v", err)
	}
	if len(deps) != 2 {
		t.Errorf("expected 2 dependencies, got %v", deps)
	}

	got, _ := s.GetTask(ctx, a.ID)
	if !reflect.DeepEqual(got.DependencyIDs, deps) {
		t.Errorf("GetTask dependencies mismatch: %v vs %v", got.DependencyIDs, deps)
	}
}

func TestDependencyRejectsSelf(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a"})
	if err := s.AddDependency(ctx, a.ID, a.ID); err == nil {
		t.Error("expected error for self-dependency")
	}
}

func TestDependencyRejectsCycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a"})
	b, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "b"})
	c, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "c"})

	s.AddDependency(ctx, a.ID, b.ID)
	s.AddDependency(ctx, b.ID, c.ID)

	// Direct cycle.
	if err := s.AddDependency(ctx, b.ID, a.ID); err == nil {
		t.Error("expected error for direct cycle")
	}
	// Transitive cycle: c -> a would close a -> b -> c -> a.
	if err := s.AddDependency(ctx, c.ID, a.ID); err == nil {
		t.Error("expected error for transitive cycle")
	}
}

func TestRemoveDependency(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a"})
	b, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "b"})

	s.AddDependency(ctx, a.ID, b.ID)
	if err := s.RemoveDependency(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("remove dependency: %v", err)
	}
	if err := s.RemoveDependency(ctx, a.ID, b.ID); err == nil {
		t.Error("expected error removing a missing dependency")
	}

	deps, _ := s.Dependencies(ctx, a.ID)
	if len(deps) != 0 {
		t.Errorf("expected no dependencies, got %v", deps)
	}
}

func TestDependencyUnknownTask(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _, project := newHierarchy(t, s)

	a, _ := s.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a"})
	if err := s.AddDependency(ctx, a.ID, "missing"); err == nil {
		t.Error("expected error for unknown prerequisite")
	}
	if err := s.AddDependency(ctx, "missing", a.ID); err == nil {
		t.Error("expected error for unknown task")
	}
}
