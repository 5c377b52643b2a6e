package harness

import (
	"fmt"

	"github.com/tasklens/tasklens/internal/display"
)

// Result holds the schedule produced by a scenario run plus any
// assertion failures.
type Result struct {
	Scenario string
	Events   []display.Event
	Failures []string
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario: the engine runs under the scenario's frozen
// clock, then each assertion is evaluated against the schedule.
// Assertion failures are collected in the result, not returned as
// errors; an error means the scenario itself is unusable.
func Run(s *Scenario) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	clock := display.NewFixedClock(s.Now)
	events := display.Schedule(s.Tasks, clock.Now())

	result := &Result{Scenario: s.Name, Events: events}
	for i, a := range s.Assertions {
		if err := a.Check(events); err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("assertion %d (%s): %v", i, a.Type, err))
		}
	}
	return result, nil
}
