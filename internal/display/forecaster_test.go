package display

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens/internal/task"
)

func baseEvent() Event {
	return Event{
		ID:    "t",
		Title: "Weekly review",
		Start: date(2025, 10, 20),
		End:   date(2025, 10, 27),
		Resource: Resource{
			TaskID:            "t",
			Status:            task.StatusToDo,
			Priority:          5,
			RecurringInterval: 7,
			CreatedAt:         date(2025, 10, 1),
			Assignees:         []task.Person{{Name: "Grace", Email: "grace@example.com"}},
			Tags:              []string{"review"},
		},
	}
}

func TestForecast_NonRecurringShortCircuit(t *testing.T) {
	base := baseEvent()
	for _, interval := range []int{0, -7} {
		t.Run(fmt.Sprintf("interval=%d", interval), func(t *testing.T) {
			out := Forecast(base, interval)
			require.Len(t, out, 1)
			assert.Equal(t, base, out[0])
		})
	}
}

func TestForecast_CompletedShortCircuit(t *testing.T) {
	base := baseEvent()
	base.Resource.Status = task.StatusCompleted
	base.Resource.IsCompleted = true

	out := Forecast(base, 7)

	require.Len(t, out, 1, "completed tasks never forecast")
	assert.Equal(t, base, out[0])
}

func TestForecast_DurationBounded(t *testing.T) {
	// 7-day span, 7-day interval: the second occurrence starts exactly
	// on the original end and is kept; the third starts after it and is
	// excluded.
	out := Forecast(baseEvent(), 7)

	require.Len(t, out, 2)

	assert.Equal(t, "t", out[0].ID)
	assert.Equal(t, date(2025, 10, 20), out[0].Start)
	assert.Equal(t, date(2025, 10, 27), out[0].End)

	assert.Equal(t, "t-recur-1", out[1].ID)
	assert.Equal(t, date(2025, 10, 27), out[1].Start)
	assert.Equal(t, date(2025, 11, 3), out[1].End)
}

func TestForecast_LargeIntervalYieldsSingleOccurrence(t *testing.T) {
	out := Forecast(baseEvent(), 90)

	require.Len(t, out, 1)
	assert.Equal(t, "t", out[0].ID)
}

func TestForecast_YearBoundary(t *testing.T) {
	base := baseEvent()
	base.Start = date(2025, 12, 31)
	base.End = date(2026, 1, 7)

	out := Forecast(base, 7)

	require.Len(t, out, 2)
	assert.Equal(t, date(2026, 1, 7), out[1].Start, "day addition must be calendar-correct across the year boundary")
	assert.Equal(t, date(2026, 1, 14), out[1].End)
}

func TestForecast_SafetyCap(t *testing.T) {
	// A 1-day interval over a two-year span would produce ~731
	// occurrences; the cap bounds it.
	base := baseEvent()
	base.End = date(2027, 10, 20)

	out := Forecast(base, 1)

	require.Len(t, out, MaxOccurrences)
	assert.Equal(t, "t", out[0].ID)
	assert.Equal(t, fmt.Sprintf("t-recur-%d", MaxOccurrences-1), out[len(out)-1].ID)
}

func TestForecast_OccurrenceIDsAndOrdering(t *testing.T) {
	base := baseEvent()
	base.End = date(2025, 11, 24) // 35-day span, 7-day interval: 6 occurrences

	out := Forecast(base, 7)

	require.Len(t, out, 6)
	assert.Equal(t, "t", out[0].ID)
	for i := 1; i < len(out); i++ {
		assert.Equal(t, fmt.Sprintf("t-recur-%d", i), out[i].ID)
		assert.Equal(t, addDays(base.Start, i*7), out[i].Start)
		assert.Equal(t, addDays(base.End, i*7), out[i].End)
	}
}

func TestForecast_ResourcesAreIsolatedCopies(t *testing.T) {
	base := baseEvent()
	out := Forecast(base, 7)
	require.Len(t, out, 2)

	assert.Equal(t, base.Resource, out[1].Resource, "occurrences carry identical resources")

	out[1].Resource.Tags[0] = "changed"
	out[1].Resource.Assignees[0].Name = "changed"
	assert.Equal(t, "review", base.Resource.Tags[0], "occurrence resources must not alias the base event")
	assert.Equal(t, "Grace", base.Resource.Assignees[0].Name)
	assert.Equal(t, "review", out[0].Resource.Tags[0], "occurrence resources must not alias each other")
}

func TestForecast_DoesNotMutateInput(t *testing.T) {
	base := baseEvent()
	snapshot := base
	snapshot.Resource = base.Resource.Clone()

	_ = Forecast(base, 7)

	assert.Equal(t, snapshot, base)
}

func TestForecast_HorizonFixedAtOriginalEnd(t *testing.T) {
	// 10-day span, 4-day interval: starts at +0, +4, +8 are within the
	// horizon; +12 is past it. The horizon never slides forward with
	// the occurrences' own ends.
	base := baseEvent()
	base.End = date(2025, 10, 30)

	out := Forecast(base, 4)

	require.Len(t, out, 3)
	assert.Equal(t, date(2025, 10, 28), out[2].Start)
}

func TestForecastLimit_ZeroYieldsNothing(t *testing.T) {
	assert.Empty(t, ForecastLimit(baseEvent(), 7, 0))
}

func TestForecastLimit_NonZeroIgnored(t *testing.T) {
	base := baseEvent()
	assert.Equal(t, Forecast(base, 7), ForecastLimit(base, 7, 1), "non-zero limits are ignored")
	assert.Equal(t, Forecast(base, 7), ForecastLimit(base, 7, 12))
}

func TestForecast_ZeroDatesFlowThrough(t *testing.T) {
	// No validation layer: zero timestamps propagate through the
	// arithmetic instead of failing.
	var base Event
	base.ID = "z"

	out := Forecast(base, 7)

	require.Len(t, out, 1)
	assert.True(t, out[0].Start.IsZero())
}

func TestForecast_TimeOfDayPreserved(t *testing.T) {
	base := baseEvent()
	base.Start = time.Date(2025, 10, 20, 9, 30, 0, 0, time.UTC)
	base.End = time.Date(2025, 10, 27, 17, 0, 0, 0, time.UTC)

	out := Forecast(base, 7)

	require.Len(t, out, 2)
	assert.Equal(t, time.Date(2025, 10, 27, 9, 30, 0, 0, time.UTC), out[1].Start)
	assert.Equal(t, time.Date(2025, 11, 3, 17, 0, 0, 0, time.UTC), out[1].End)
}
