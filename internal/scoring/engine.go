// Package scoring computes deterministic priority scores for tasks and
// selects the bounded daily focus list. Everything here is pure: the
// same inputs always produce the same score, breakdown, and ordering.
package scoring

import (
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/model"
)

// Breakdown factor names. These are stable identifiers: downstream
// consumers key off them to explain why a task was surfaced.
const (
	FactorUrgency           = "urgency"
	FactorPriority          = "priority"
	FactorProjectImportance = "project_importance"
	FactorAreaImportance    = "area_importance"
	FactorDependencies      = "dependencies"
)

// Factor is one contributing term of a task's score.
type Factor struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// Breakdown explains a score factor by factor. All five factors are
// always present, zero-valued when they did not contribute.
type Breakdown struct {
	Factors []Factor `json:"factors"`
	Total   float64  `json:"total"`
	Reasons []string `json:"reasons"`
	Blocked bool     `json:"blocked,omitempty"`
}

// TaskScore is the scored result for a single task.
type TaskScore struct {
	TaskID    string    `json:"task_id"`
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// TaskInput bundles a task with its resolved ancestors and the
// completion state of its dependencies.
type TaskInput struct {
	Task    model.Task
	Project model.Project
	Area    model.Area
	// DepsCompleted maps dependency task id to its completed flag.
	// A dependency missing from the map counts as incomplete.
	DepsCompleted map[string]bool
}

// Engine scores tasks under a fixed set of weights.
type Engine struct {
	weights Weights
}

// NewEngine returns an engine using the given weights.
func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// ScoreTask computes the priority score for one incomplete task.
//
// Passing a completed task is a caller error and returns
// InvalidInputError; callers must filter completed tasks first. A task
// with an incomplete dependency is still scored but its breakdown is
// tagged blocked, and SelectFocus will never surface it.
func (e *Engine) ScoreTask(in TaskInput, now time.Time) (TaskScore, error) {
	t := in.Task

	if t.Completed {
		return TaskScore{}, invalidInput("task.completed", true, "completed tasks are not scored")
	}
	taskPriority, err := model.ParsePriority(string(t.Priority))
	if err != nil {
		return TaskScore{}, invalidInput("task.priority", t.Priority, err.Error())
	}
	projectPriority, err := model.ParsePriority(string(in.Project.Priority))
	if err != nil {
		return TaskScore{}, invalidInput("project.priority", in.Project.Priority, err.Error())
	}
	if !model.ValidImportance(in.Area.Importance) {
		return TaskScore{}, invalidInput("area.importance", in.Area.Importance, "must be 1-5")
	}

	w := e.weights
	b := Breakdown{Reasons: []string{}}

	// Urgency: overdue dominates, due-today comes next, compared on
	// calendar days in now's location.
	var urgency float64
	if t.DueDate != nil {
		due := calendarDay(*t.DueDate, now.Location())
		today := calendarDay(now, now.Location())
		if due.Before(today) {
			urgency = w.Overdue
			days := int(today.Sub(due).Hours() / 24)
			b.Reasons = append(b.Reasons, fmt.Sprintf("Overdue by %d %s", days, plural(days, "day", "days")))
		} else if due.Equal(today) {
			urgency = w.DueToday
			b.Reasons = append(b.Reasons, "Due today")
		}
	}
	b.Factors = append(b.Factors, Factor{Name: FactorUrgency, Points: urgency})

	var priority float64
	switch taskPriority {
	case model.PriorityHigh:
		priority = w.PriorityHigh
		b.Reasons = append(b.Reasons, "Task priority: High")
	case model.PriorityMedium:
		priority = w.PriorityMedium
		b.Reasons = append(b.Reasons, "Task priority: Medium")
	}
	b.Factors = append(b.Factors, Factor{Name: FactorPriority, Points: priority})

	var projectPoints float64
	switch projectPriority {
	case model.PriorityHigh:
		projectPoints = w.ProjectMax
		b.Reasons = append(b.Reasons, "Project priority: High")
	case model.PriorityMedium:
		projectPoints = w.ProjectMax / 2
		b.Reasons = append(b.Reasons, "Project priority: Medium")
	}
	b.Factors = append(b.Factors, Factor{Name: FactorProjectImportance, Points: projectPoints})

	// Area importance scales linearly: 1 contributes nothing, 5 the
	// full weight. Zero means unset and falls back to the lowest tier.
	imp := in.Area.Importance
	if imp == 0 {
		imp = 1
	}
	areaPoints := float64(imp-1) / 4 * w.AreaMax
	if areaPoints > 0 {
		b.Reasons = append(b.Reasons, fmt.Sprintf("Area importance: %d/5", imp))
	}
	b.Factors = append(b.Factors, Factor{Name: FactorAreaImportance, Points: areaPoints})

	var depPoints float64
	if len(t.DependencyIDs) > 0 {
		incomplete := 0
		for _, id := range t.DependencyIDs {
			if !in.DepsCompleted[id] {
				incomplete++
			}
		}
		if incomplete == 0 {
			depPoints = w.DependencyClear
			b.Reasons = append(b.Reasons, "Dependencies met")
		} else {
			b.Blocked = true
			b.Reasons = append(b.Reasons, fmt.Sprintf("Blocked by %d incomplete %s", incomplete, plural(incomplete, "dependency", "dependencies")))
		}
	}
	b.Factors = append(b.Factors, Factor{Name: FactorDependencies, Points: depPoints})

	for _, f := range b.Factors {
		b.Total += f.Points
	}

	return TaskScore{TaskID: t.ID, Score: b.Total, Breakdown: b}, nil
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
