// Package store provides the hierarchy storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/aurumlife/aurum/internal/model"
	"github.com/aurumlife/aurum/internal/scoring"
)

// CreatePillarParams holds parameters for creating a pillar.
type CreatePillarParams struct {
	Name       string
	Importance int
}

// CreateAreaParams holds parameters for creating an area.
type CreateAreaParams struct {
	PillarID   string
	Name       string
	Importance int
}

// CreateProjectParams holds parameters for creating a project.
type CreateProjectParams struct {
	AreaID   string
	Name     string
	Priority string
}

// CreateTaskParams holds parameters for creating a task.
type CreateTaskParams struct {
	ProjectID     string
	Name          string
	Description   string
	Priority      string
	DueDate       *time.Time
	ScheduledDate *time.Time
}

// ListTasksParams holds filters for listing tasks.
type ListTasksParams struct {
	ProjectID        string
	Priority         string
	IncludeCompleted bool
	Search           string // substring match on name and description
	Limit            int
}

// UpdateTaskParams holds optional task field updates. Empty strings
// leave the field unchanged; ClearDueDate removes the due date
// explicitly.
type UpdateTaskParams struct {
	Name         string
	Description  string
	Priority     string
	DueDate      *time.Time
	ClearDueDate bool
}

// Store defines the hierarchy storage interface.
type Store interface {
	// CreatePillar creates a top-level pillar.
	CreatePillar(ctx context.Context, p CreatePillarParams) (*model.Pillar, error)

	// CreateArea creates an area under an existing pillar.
	CreateArea(ctx context.Context, p CreateAreaParams) (*model.Area, error)

	// CreateProject creates an active project under an existing area.
	CreateProject(ctx context.Context, p CreateProjectParams) (*model.Project, error)

	// CreateTask creates an incomplete task under an existing project.
	CreateTask(ctx context.Context, p CreateTaskParams) (*model.Task, error)

	// ListTasks lists tasks matching the given filters.
	ListTasks(ctx context.Context, p ListTasksParams) ([]model.Task, error)

	// CompleteTask marks a task completed and records when.
	CompleteTask(ctx context.Context, taskID string) (*model.Task, error)

	// AddDependency records that a task depends on another task.
	// Self-dependencies and cycles are rejected at write time.
	AddDependency(ctx context.Context, taskID, dependsOnID string) error

	// TodaySnapshot assembles scoring inputs for every incomplete task
	// in an active project: the task, its ancestors, and the completion
	// state of its dependencies.
	TodaySnapshot(ctx context.Context) ([]scoring.TaskInput, error)

	// Close closes the store.
	Close() error
}
