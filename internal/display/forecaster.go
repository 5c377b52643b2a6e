package display

import (
	"fmt"

	"github.com/tasklens/tasklens/internal/task"
)

// MaxOccurrences caps forecast output regardless of task duration, to
// bound pathological inputs such as a 1-day interval on a multi-year
// task.
const MaxOccurrences = 100

// Forecast expands a projected event into its occurrence sequence: the
// original event plus bounded future occurrences of a recurring task.
//
// Short circuits, each returning exactly [base]:
//
//   - intervalDays <= 0: the task does not recur.
//   - completed task: the next occurrence of a completed recurring task
//     is expected to already exist as a separate persisted task created
//     by the owning service; forecasting from it would double-count.
//
// Otherwise occurrence i carries Start and End shifted by i*intervalDays
// calendar days. Occurrence 0 keeps the base ID; occurrence i >= 1 gets
// "{id}-recur-{i}". Generation is duration-bounded: it stops before the
// first occurrence whose start is strictly after the base event's own
// original End, so long-duration tasks forecast further ahead than
// short ones. MaxOccurrences bounds the result in all cases.
//
// Every occurrence's resource is a copy of base.Resource; occurrences
// never alias each other.
func Forecast(base Event, intervalDays int) []Event {
	if intervalDays <= 0 {
		return []Event{base}
	}
	if base.Resource.Status == task.StatusCompleted {
		return []Event{base}
	}

	// The boundary is captured once; it never advances with the
	// occurrences themselves.
	horizon := base.End

	events := make([]Event, 0, 4)
	for i := 0; len(events) < MaxOccurrences; i++ {
		start := addDays(base.Start, i*intervalDays)
		if i > 0 && start.After(horizon) {
			break
		}
		id := base.ID
		if i > 0 {
			id = fmt.Sprintf("%s-recur-%d", base.ID, i)
		}
		events = append(events, Event{
			ID:       id,
			Title:    base.Title,
			Start:    start,
			End:      addDays(base.End, i*intervalDays),
			Resource: base.Resource.Clone(),
		})
	}
	return events
}

// ForecastLimit is Forecast with the legacy occurrence-limit parameter.
// Only limit 0 is honored, yielding no occurrences; every other value is
// ignored and the duration-bounded policy applies. Retained for callers
// migrated from the old fixed-count policy.
func ForecastLimit(base Event, intervalDays, limit int) []Event {
	if limit == 0 {
		return nil
	}
	return Forecast(base, intervalDays)
}
