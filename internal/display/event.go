package display

import (
	"time"

	"github.com/tasklens/tasklens/internal/task"
)

// Event is the calendar-interval representation of one task occurrence.
//
// Events are value objects: constructed fresh on every projection or
// forecast call, never persisted, never updated. A changed task simply
// produces a new Event on the next call.
//
// Start <= End is NOT guaranteed in general: for a late-started task the
// interval deliberately spans from the missed deadline to the actual
// start, so renderers must not assume ordering.
type Event struct {
	// ID is the source task id, or "{taskId}-recur-{n}" for the nth
	// synthesized forecast occurrence (n >= 1).
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Resource Resource `json:"resource"`
}

// Resource is the event's pass-through attribute bag: a verbatim copy
// of the task's display metadata plus the projector's derived flags.
// Forecast occurrences of one task differ only in ID, Start and End;
// their resources are structurally identical copies.
type Resource struct {
	TaskID      string      `json:"task_id"`
	Status      task.Status `json:"status"`
	Priority    int         `json:"priority"`
	Description string      `json:"description,omitempty"`

	IsStarted   bool `json:"is_started"`
	IsCompleted bool `json:"is_completed"`
	IsOverdue   bool `json:"is_overdue"`

	RecurringInterval int       `json:"recurring_interval,omitempty"`
	ParentID          string    `json:"parent_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`

	Owner      *task.Person  `json:"owner,omitempty"`
	Department string        `json:"department,omitempty"`
	Assignees  []task.Person `json:"assignees,omitempty"`
	Tags       []string      `json:"tags,omitempty"`
}

// Clone returns a deep copy of the resource. Slices and the owner
// pointer are duplicated so occurrences never alias each other or the
// source task.
func (r Resource) Clone() Resource {
	out := r
	if r.Owner != nil {
		owner := *r.Owner
		out.Owner = &owner
	}
	if r.Assignees != nil {
		out.Assignees = make([]task.Person, len(r.Assignees))
		copy(out.Assignees, r.Assignees)
	}
	if r.Tags != nil {
		out.Tags = make([]string, len(r.Tags))
		copy(out.Tags, r.Tags)
	}
	return out
}
