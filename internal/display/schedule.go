package display

import (
	"time"

	"github.com/tasklens/tasklens/internal/task"
)

// Schedule projects and forecasts every task and flattens the results
// into one event list. Ordering is deterministic: input task order is
// preserved, and within one task the occurrences appear in increasing
// occurrence index.
func Schedule(tasks []task.Task, now time.Time) []Event {
	events := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		base := Project(t, now)
		events = append(events, Forecast(base, t.RecurringInterval)...)
	}
	return events
}
