package harness

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

// scheduleSnapshot is the JSON form compared against golden files.
// Timestamps are RFC 3339 strings so snapshots stay readable in diffs.
type scheduleSnapshot struct {
	Scenario string          `json:"scenario"`
	Now      string          `json:"now"`
	Events   []eventSnapshot `json:"events"`
}

type eventSnapshot struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	Started   bool   `json:"started"`
	Completed bool   `json:"completed"`
	Overdue   bool   `json:"overdue"`
}

// RunWithGolden executes a scenario and compares its schedule snapshot
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, s *Scenario) *Result {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		t.Fatalf("run scenario %s: %v", s.Name, err)
	}
	for _, failure := range result.Failures {
		t.Errorf("scenario %s: %s", s.Name, failure)
	}

	snap := scheduleSnapshot{
		Scenario: s.Name,
		Now:      s.Now.Format(time.RFC3339),
		Events:   make([]eventSnapshot, len(result.Events)),
	}
	for i, ev := range result.Events {
		snap.Events[i] = eventSnapshot{
			ID:        ev.ID,
			Title:     ev.Title,
			Start:     ev.Start.Format(time.RFC3339),
			End:       ev.End.Format(time.RFC3339),
			Status:    string(ev.Resource.Status),
			Started:   ev.Resource.IsStarted,
			Completed: ev.Resource.IsCompleted,
			Overdue:   ev.Resource.IsOverdue,
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)

	return result
}
