package store

import (
	"context"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	_, _, project := newHierarchy(t, src)

	a, _ := src.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "a", Priority: "high"})
	b, _ := src.CreateTask(ctx, CreateTaskParams{ProjectID: project.ID, Name: "b"})
	src.AddDependency(ctx, b.ID, a.ID)
	src.CompleteTask(ctx, a.ID)

	export, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(export.Pillars) != 1 || len(export.Areas) != 1 || len(export.Projects) != 1 || len(export.Tasks) != 2 {
		t.Fatalf("unexpected export shape: %+v", export)
	}

	dst := newTestStore(t)
	imported, err := dst.Import(ctx, export)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 5 {
		t.Errorf("expected 5 rows imported, got %d", imported)
	}

	got, err := dst.GetTask(ctx, b.ID)
	if err != nil {
		t.Fatalf("get imported task: %v", err)
	}
	if len(got.DependencyIDs) != 1 || got.DependencyIDs[0] != a.ID {
		t.Errorf("dependencies lost on import: %v", got.DependencyIDs)
	}

	done, _ := dst.GetTask(ctx, a.ID)
	if !done.Completed || done.CompletedAt == nil {
		t.Errorf("completion state lost on import: %+v", done)
	}

	// Re-importing skips existing ids.
	again, err := dst.Import(ctx, export)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if again != 0 {
		t.Errorf("expected 0 rows on re-import, got %d", again)
	}
}
