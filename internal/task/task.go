// Package task defines the externally-owned task record consumed by the
// display engine. The engine treats these values as read-only input; all
// mutation (CRUD, business rules, validation) belongs to the owning
// service, not to this module.
package task

import (
	"strings"
	"time"
)

// Status is a task's workflow state.
type Status string

// Workflow states. The wire form uses underscores; Human() gives the
// display form.
const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses lists every valid workflow state, in lifecycle order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusBlocked, StatusCompleted}

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Human returns the display form of the status: underscores replaced
// with spaces ("IN_PROGRESS" -> "IN PROGRESS").
func (s Status) Human() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Person identifies a task owner or assignee.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Task is one task record as supplied by the task store.
//
// Temporal fields drive the display engine: CreatedAt anchors unstarted
// tasks, DueDate is the deadline, StartDate is set once work has begun.
// RecurringInterval is a repeat period in days; zero or negative means
// the task does not recur.
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status `json:"status" yaml:"status"`

	// Priority is conventionally 1 (lowest) through 10 (highest).
	Priority int `json:"priority" yaml:"priority"`

	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	DueDate   time.Time  `json:"due_date" yaml:"due_date"`
	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`

	// RecurringInterval is the repeat period in days; <= 0 means none.
	RecurringInterval int `json:"recurring_interval,omitempty" yaml:"recurring_interval,omitempty"`

	// ParentID marks a subtask when non-empty.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	Owner      *Person  `json:"owner,omitempty" yaml:"owner,omitempty"`
	Department string   `json:"department,omitempty" yaml:"department,omitempty"`
	Assignees  []Person `json:"assignees,omitempty" yaml:"assignees,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Clone returns a deep copy of the task. Slices and the owner pointer
// are copied so the clone shares no mutable state with the original.
func (t Task) Clone() Task {
	out := t
	if t.StartDate != nil {
		start := *t.StartDate
		out.StartDate = &start
	}
	if t.Owner != nil {
		owner := *t.Owner
		out.Owner = &owner
	}
	if t.Assignees != nil {
		out.Assignees = make([]Person, len(t.Assignees))
		copy(out.Assignees, t.Assignees)
	}
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	return out
}
