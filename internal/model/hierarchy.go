// Package model defines the Pillar→Area→Project→Task hierarchy types.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the tactical urgency tier on projects and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes a priority string. Empty means "unset" and maps
// to the lowest tier; anything else outside the closed set is rejected.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PriorityLow, nil
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q (valid: low, medium, high)", s)
}

// ProjectStatus marks whether a project still accepts work.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// ValidProjectStatuses are the allowed project statuses.
var ValidProjectStatuses = map[string]bool{
	string(ProjectActive):   true,
	string(ProjectArchived): true,
}

// Pillar is a top-level life domain with a user-assigned strategic weight.
type Pillar struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Importance int       `json:"importance"` // 1-5
	CreatedAt  time.Time `json:"created_at"`
}

// Area is a focus area inside a pillar.
type Area struct {
	ID         string    `json:"id"`
	PillarID   string    `json:"pillar_id"`
	Name       string    `json:"name"`
	Importance int       `json:"importance"` // 1-5
	CreatedAt  time.Time `json:"created_at"`
}

// Project groups tasks under an area.
type Project struct {
	ID        string        `json:"id"`
	AreaID    string        `json:"area_id"`
	Name      string        `json:"name"`
	Priority  Priority      `json:"priority"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Task is an individual actionable item.
type Task struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Priority      Priority   `json:"priority"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	DependencyIDs []string   `json:"dependency_ids,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ValidImportance reports whether an importance weight is on the 1-5 scale.
// Zero is allowed as "unset" and treated as the lowest tier downstream.
func ValidImportance(v int) bool {
	return v >= 0 && v <= 5
}
