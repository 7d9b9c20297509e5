package scoring

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/model"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func testInput() TaskInput {
	return TaskInput{
		Task:    model.Task{ID: "t1", ProjectID: "p1", Name: "write report", Priority: model.PriorityLow},
		Project: model.Project{ID: "p1", AreaID: "a1", Name: "reports", Priority: model.PriorityLow, Status: model.ProjectActive},
		Area:    model.Area{ID: "a1", PillarID: "pl1", Name: "work", Importance: 1},
	}
}

func daysFromNow(d int) *time.Time {
	t := testNow.AddDate(0, 0, d)
	return &t
}

func mustScore(t *testing.T, in TaskInput) TaskScore {
	t.Helper()
	ts, err := NewEngine(DefaultWeights()).ScoreTask(in, testNow)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return ts
}

func TestScoreDeterminism(t *testing.T) {
	in := testInput()
	in.Task.Priority = model.PriorityHigh
	in.Task.DueDate = daysFromNow(-2)
	in.Task.DependencyIDs = []string{"d1"}
	in.DepsCompleted = map[string]bool{"d1": true}

	a := mustScore(t, in)
	b := mustScore(t, in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestPriorityMonotonicity(t *testing.T) {
	var prev float64 = -1
	for _, p := range []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh} {
		in := testInput()
		in.Task.Priority = p
		ts := mustScore(t, in)
		if ts.Score < prev {
			t.Errorf("raising priority to %s decreased score: %v < %v", p, ts.Score, prev)
		}
		prev = ts.Score
	}
}

func TestOverdueBonus(t *testing.T) {
	overdue := testInput()
	overdue.Task.DueDate = daysFromNow(-1)

	later := testInput()
	later.Task.DueDate = daysFromNow(3)

	undated := testInput()

	o, l, u := mustScore(t, overdue), mustScore(t, later), mustScore(t, undated)
	if o.Score != 100 {
		t.Errorf("overdue low-everything task: expected 100, got %v", o.Score)
	}
	if l.Score != 0 || u.Score != 0 {
		t.Errorf("non-urgent low-everything tasks should score 0, got %v and %v", l.Score, u.Score)
	}
	if o.Score <= l.Score {
		t.Errorf("overdue (%v) must outrank non-overdue (%v) at equal priority", o.Score, l.Score)
	}
}

func TestDueTodayBelowOverdue(t *testing.T) {
	today := testInput()
	today.Task.DueDate = &testNow

	overdue := testInput()
	overdue.Task.DueDate = daysFromNow(-1)

	dt, od := mustScore(t, today), mustScore(t, overdue)
	if dt.Score != 80 {
		t.Errorf("due today: expected 80, got %v", dt.Score)
	}
	if od.Score <= dt.Score {
		t.Errorf("overdue (%v) must outrank due-today (%v)", od.Score, dt.Score)
	}
}

// An overdue trivial task scores 100; a non-urgent task with every
// importance bonus maxed scores 30+50+25 = 105 and edges it out. That
// crossover is the intended behavior of the additive model.
func TestImportanceCanOutweighOverdue(t *testing.T) {
	a := testInput()
	a.Task.DueDate = daysFromNow(-1)

	b := testInput()
	b.Task.Priority = model.PriorityHigh
	b.Project.Priority = model.PriorityHigh
	b.Area.Importance = 5

	sa, sb := mustScore(t, a), mustScore(t, b)
	if sa.Score != 100 {
		t.Errorf("task A: expected 100, got %v", sa.Score)
	}
	if sb.Score != 105 {
		t.Errorf("task B: expected 105, got %v", sb.Score)
	}
	if sb.Score <= sa.Score {
		t.Errorf("fully important task (%v) should edge out trivial overdue task (%v)", sb.Score, sa.Score)
	}
}

func TestProjectPriorityScaling(t *testing.T) {
	cases := []struct {
		priority model.Priority
		want     float64
	}{
		{model.PriorityHigh, 50},
		{model.PriorityMedium, 25},
		{model.PriorityLow, 0},
	}
	for _, c := range cases {
		in := testInput()
		in.Project.Priority = c.priority
		ts := mustScore(t, in)
		if got := factorPoints(ts, FactorProjectImportance); got != c.want {
			t.Errorf("project priority %s: expected %v points, got %v", c.priority, c.want, got)
		}
	}
}

func TestAreaImportanceLinear(t *testing.T) {
	cases := []struct {
		importance int
		want       float64
	}{
		{1, 0},
		{3, 12.5},
		{5, 25},
	}
	for _, c := range cases {
		in := testInput()
		in.Area.Importance = c.importance
		ts := mustScore(t, in)
		if got := factorPoints(ts, FactorAreaImportance); got != c.want {
			t.Errorf("area importance %d: expected %v points, got %v", c.importance, c.want, got)
		}
	}
}

func TestDependencyClearBonus(t *testing.T) {
	in := testInput()
	in.Task.DependencyIDs = []string{"d1", "d2"}
	in.DepsCompleted = map[string]bool{"d1": true, "d2": true}

	ts := mustScore(t, in)
	if got := factorPoints(ts, FactorDependencies); got != 60 {
		t.Errorf("all dependencies met: expected 60 points, got %v", got)
	}
	if ts.Breakdown.Blocked {
		t.Error("unblocked task tagged blocked")
	}
}

func TestBlockedTaskStillScoredButTagged(t *testing.T) {
	in := testInput()
	in.Task.Priority = model.PriorityHigh
	in.Task.DependencyIDs = []string{"d1", "d2"}
	in.DepsCompleted = map[string]bool{"d1": true} // d2 missing = incomplete

	ts := mustScore(t, in)
	if !ts.Breakdown.Blocked {
		t.Error("task with incomplete dependency not tagged blocked")
	}
	if got := factorPoints(ts, FactorDependencies); got != 0 {
		t.Errorf("blocked task: expected 0 dependency points, got %v", got)
	}
	if ts.Score != 30 {
		t.Errorf("blocked task should still carry its diagnostic score, got %v", ts.Score)
	}
}

func TestNoDependenciesNoBonus(t *testing.T) {
	ts := mustScore(t, testInput())
	if got := factorPoints(ts, FactorDependencies); got != 0 {
		t.Errorf("task without dependencies: expected 0 points, got %v", got)
	}
	if ts.Breakdown.Blocked {
		t.Error("task without dependencies tagged blocked")
	}
}

func TestBreakdownFactorNamesStable(t *testing.T) {
	ts := mustScore(t, testInput())
	want := []string{FactorUrgency, FactorPriority, FactorProjectImportance, FactorAreaImportance, FactorDependencies}
	if len(ts.Breakdown.Factors) != len(want) {
		t.Fatalf("expected %d factors, got %d", len(want), len(ts.Breakdown.Factors))
	}
	for i, f := range ts.Breakdown.Factors {
		if f.Name != want[i] {
			t.Errorf("factor %d: expected %q, got %q", i, want[i], f.Name)
		}
	}
}

func TestBreakdownReasons(t *testing.T) {
	in := testInput()
	in.Task.DueDate = daysFromNow(-3)
	in.Task.Priority = model.PriorityHigh

	ts := mustScore(t, in)
	want := []string{"Overdue by 3 days", "Task priority: High"}
	if !reflect.DeepEqual(ts.Breakdown.Reasons, want) {
		t.Errorf("expected reasons %v, got %v", want, ts.Breakdown.Reasons)
	}
}

func TestCompletedTaskRejected(t *testing.T) {
	in := testInput()
	in.Task.Completed = true

	_, err := NewEngine(DefaultWeights()).ScoreTask(in, testNow)
	var iie *InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if iie.Field != "task.completed" {
		t.Errorf("expected field task.completed, got %q", iie.Field)
	}
}

func TestMalformedInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TaskInput)
		field  string
	}{
		{"unknown task priority", func(in *TaskInput) { in.Task.Priority = "urgent" }, "task.priority"},
		{"unknown project priority", func(in *TaskInput) { in.Project.Priority = "critical" }, "project.priority"},
		{"negative area importance", func(in *TaskInput) { in.Area.Importance = -1 }, "area.importance"},
		{"area importance above range", func(in *TaskInput) { in.Area.Importance = 6 }, "area.importance"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := testInput()
			c.mutate(&in)
			_, err := NewEngine(DefaultWeights()).ScoreTask(in, testNow)
			var iie *InvalidInputError
			if !errors.As(err, &iie) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if iie.Field != c.field {
				t.Errorf("expected field %q, got %q", c.field, iie.Field)
			}
		})
	}
}

func TestMissingFieldsFailSafe(t *testing.T) {
	in := testInput()
	in.Task.Priority = ""
	in.Project.Priority = ""
	in.Area.Importance = 0

	ts := mustScore(t, in)
	if ts.Score != 0 {
		t.Errorf("unset priority and importance should score as lowest tier, got %v", ts.Score)
	}
}

func TestCalendarDayComparison(t *testing.T) {
	// Due late yesterday evening is overdue even if less than 24h ago.
	in := testInput()
	due := testNow.AddDate(0, 0, -1).Add(10 * time.Hour) // 22:00 yesterday
	in.Task.DueDate = &due

	ts := mustScore(t, in)
	if got := factorPoints(ts, FactorUrgency); got != 100 {
		t.Errorf("due yesterday evening: expected overdue bonus 100, got %v", got)
	}

	// Due later today still counts as due today.
	in = testInput()
	due = testNow.Add(9 * time.Hour)
	in.Task.DueDate = &due
	ts = mustScore(t, in)
	if got := factorPoints(ts, FactorUrgency); got != 80 {
		t.Errorf("due this evening: expected due-today bonus 80, got %v", got)
	}
}

func factorPoints(ts TaskScore, name string) float64 {
	for _, f := range ts.Breakdown.Factors {
		if f.Name == name {
			return f.Points
		}
	}
	return -1
}
