package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the point values of the additive scoring model. The
// defaults are a tunable baseline; overrides must keep overdue above
// due-today and the priority ladder ordered so relative urgency
// semantics survive tuning.
type Weights struct {
	Overdue         float64 `yaml:"overdue"`
	DueToday        float64 `yaml:"due_today"`
	PriorityHigh    float64 `yaml:"priority_high"`
	PriorityMedium  float64 `yaml:"priority_medium"`
	ProjectMax      float64 `yaml:"project_max"`
	AreaMax         float64 `yaml:"area_max"`
	DependencyClear float64 `yaml:"dependency_clear"`
}

// DefaultWeights returns the baseline point values.
func DefaultWeights() Weights {
	return Weights{
		Overdue:         100,
		DueToday:        80,
		PriorityHigh:    30,
		PriorityMedium:  15,
		ProjectMax:      50,
		AreaMax:         25,
		DependencyClear: 60,
	}
}

// Validate checks that the weights are non-negative and preserve the
// urgency and priority orderings the scoring model depends on.
func (w Weights) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"overdue", w.Overdue},
		{"due_today", w.DueToday},
		{"priority_high", w.PriorityHigh},
		{"priority_medium", w.PriorityMedium},
		{"project_max", w.ProjectMax},
		{"area_max", w.AreaMax},
		{"dependency_clear", w.DependencyClear},
	} {
		if v.value < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", v.name, v.value)
		}
	}
	if w.Overdue <= w.DueToday {
		return fmt.Errorf("weight overdue (%v) must exceed due_today (%v)", w.Overdue, w.DueToday)
	}
	if w.PriorityHigh < w.PriorityMedium {
		return fmt.Errorf("weight priority_high (%v) must be at least priority_medium (%v)", w.PriorityHigh, w.PriorityMedium)
	}
	return nil
}

// LoadWeights reads weight overrides from a YAML file. Fields absent
// from the file keep their baseline values. An empty path returns the
// defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parse weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}
