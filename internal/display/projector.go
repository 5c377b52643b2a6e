package display

import (
	"time"

	"github.com/tasklens/tasklens/internal/task"
)

// Project maps one task to its display interval and derived flags.
//
// Interval selection:
//
//   - Late start (StartDate after DueDate): the interval spans from the
//     missed deadline to the actual start, Start=DueDate, End=StartDate,
//     so the overdue period is visible on the calendar. The task is
//     overdue unless completed.
//
//   - Otherwise: Start is StartDate when work has begun, else CreatedAt
//     (anchoring unstarted tasks at creation keeps their calendar
//     position stable as time passes); End is DueDate. The task is
//     overdue when DueDate's calendar day is strictly before now's day
//     and the task is not completed.
//
// A COMPLETED task is never flagged overdue, in either branch.
//
// The day comparison runs in now's location. Pure: the returned event
// shares no mutable state with t, and equal inputs (including now)
// always produce structurally equal events.
func Project(t task.Task, now time.Time) Event {
	hasStarted := t.StartDate != nil
	completed := t.Status == task.StatusCompleted

	var start, end time.Time
	var overdue bool

	if hasStarted && t.StartDate.After(t.DueDate) {
		start = t.DueDate
		end = *t.StartDate
		overdue = !completed
	} else {
		if hasStarted {
			start = *t.StartDate
		} else {
			start = t.CreatedAt
		}
		end = t.DueDate
		overdue = !completed && beforeDay(t.DueDate, now, now.Location())
	}

	return Event{
		ID:    t.ID,
		Title: t.Title,
		Start: start,
		End:   end,
		Resource: Resource{
			TaskID:            t.ID,
			Status:            t.Status,
			Priority:          t.Priority,
			Description:       t.Description,
			IsStarted:         hasStarted,
			IsCompleted:       completed,
			IsOverdue:         overdue,
			RecurringInterval: t.RecurringInterval,
			ParentID:          t.ParentID,
			CreatedAt:         t.CreatedAt,
			Owner:             cloneOwner(t.Owner),
			Department:        t.Department,
			Assignees:         clonePeople(t.Assignees),
			Tags:              cloneStrings(t.Tags),
		},
	}
}

func cloneOwner(p *task.Person) *task.Person {
	if p == nil {
		return nil
	}
	owner := *p
	return &owner
}

func clonePeople(people []task.Person) []task.Person {
	if people == nil {
		return nil
	}
	out := make([]task.Person, len(people))
	copy(out, people)
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
