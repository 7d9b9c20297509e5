package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeightsValid(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
}

func TestLoadWeightsEmptyPath(t *testing.T) {
	w, err := LoadWeights("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w != DefaultWeights() {
		t.Errorf("expected defaults, got %+v", w)
	}
}

func TestLoadWeightsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	os.WriteFile(path, []byte("overdue: 200\narea_max: 40\n"), 0o644)

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Overdue != 200 || w.AreaMax != 40 {
		t.Errorf("overrides not applied: %+v", w)
	}
	if w.DueToday != 80 || w.DependencyClear != 60 {
		t.Errorf("untouched fields should keep baseline values: %+v", w)
	}
}

func TestLoadWeightsRejectsBadOrdering(t *testing.T) {
	cases := []string{
		"overdue: 50\n",          // below due_today
		"priority_high: 5\n",     // below priority_medium
		"dependency_clear: -1\n", // negative
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		os.WriteFile(path, []byte(content), 0o644)
		if _, err := LoadWeights(path); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestLoadWeightsMissingFile(t *testing.T) {
	if _, err := LoadWeights(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
