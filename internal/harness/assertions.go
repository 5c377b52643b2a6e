package harness

import (
	"fmt"
	"slices"

	"github.com/tasklens/tasklens/internal/display"
)

// Assertion types.
const (
	// AssertEventCount checks the total number of schedule events.
	AssertEventCount = "event_count"
	// AssertEventIDs checks the exact ordered event id sequence.
	AssertEventIDs = "event_ids"
	// AssertOverdueIDs checks which event ids carry the overdue flag,
	// in schedule order.
	AssertOverdueIDs = "overdue_ids"
)

// Assertion validates one property of a scenario's schedule.
type Assertion struct {
	Type string `yaml:"type"`

	// Count is used by event_count.
	Count int `yaml:"count,omitempty"`

	// IDs is used by event_ids and overdue_ids.
	IDs []string `yaml:"ids,omitempty"`
}

// Check evaluates the assertion against a schedule.
func (a Assertion) Check(events []display.Event) error {
	switch a.Type {
	case AssertEventCount:
		if len(events) != a.Count {
			return fmt.Errorf("expected %d events, got %d", a.Count, len(events))
		}
	case AssertEventIDs:
		ids := eventIDs(events, false)
		if !slices.Equal(ids, a.IDs) {
			return fmt.Errorf("expected ids %v, got %v", a.IDs, ids)
		}
	case AssertOverdueIDs:
		ids := eventIDs(events, true)
		if !slices.Equal(ids, a.IDs) {
			return fmt.Errorf("expected overdue ids %v, got %v", a.IDs, ids)
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

func eventIDs(events []display.Event, overdueOnly bool) []string {
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		if overdueOnly && !ev.Resource.IsOverdue {
			continue
		}
		ids = append(ids, ev.ID)
	}
	return ids
}
