package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens/internal/task"
)

const sampleTasksYAML = `- id: review
  title: Weekly review
  status: IN_PROGRESS
  priority: 5
  created_at: 2025-10-01T00:00:00Z
  due_date: 2025-10-27T00:00:00Z
  start_date: 2025-10-20T00:00:00Z
  recurring_interval: 7
- title: Draft budget
  status: TO_DO
  priority: 3
  created_at: 2025-10-01T00:00:00Z
  due_date: 2025-10-30T00:00:00Z
`

const sampleTasksJSON = `[
  {
    "id": "review",
    "title": "Weekly review",
    "status": "IN_PROGRESS",
    "priority": 5,
    "created_at": "2025-10-01T00:00:00Z",
    "due_date": "2025-10-27T00:00:00Z",
    "start_date": "2025-10-20T00:00:00Z",
    "recurring_interval": 7
  }
]`

func writeTasksFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTasks_YAML(t *testing.T) {
	path := writeTasksFile(t, "tasks.yaml", sampleTasksYAML)

	tasks, err := LoadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	review := tasks[0]
	assert.Equal(t, "review", review.ID)
	assert.Equal(t, task.StatusInProgress, review.Status)
	assert.Equal(t, 7, review.RecurringInterval)
	require.NotNil(t, review.StartDate)
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), *review.StartDate)
}

func TestLoadTasks_JSON(t *testing.T) {
	path := writeTasksFile(t, "tasks.json", sampleTasksJSON)

	tasks, err := LoadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "review", tasks[0].ID)
	assert.Equal(t, time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC), tasks[0].DueDate)
}

func TestLoadTasks_AssignsMissingIDs(t *testing.T) {
	path := writeTasksFile(t, "tasks.yaml", sampleTasksYAML)

	tasks, err := LoadTasks(path)
	require.NoError(t, err)

	id := tasks[1].ID
	require.NotEmpty(t, id, "tasks without ids get one assigned")
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "assigned id should be a UUID, got %q", id)
}

func TestLoadTasks_UnsupportedExtension(t *testing.T) {
	path := writeTasksFile(t, "tasks.toml", "")
	_, err := LoadTasks(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported task file extension")
}

func TestLoadTasks_MissingFile(t *testing.T) {
	_, err := LoadTasks(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTasks_Malformed(t *testing.T) {
	yamlPath := writeTasksFile(t, "tasks.yaml", "- id: [broken\n")
	_, err := LoadTasks(yamlPath)
	assert.Error(t, err)

	jsonPath := writeTasksFile(t, "tasks.json", "{not json")
	_, err = LoadTasks(jsonPath)
	assert.Error(t, err)
}

func TestResolveNow(t *testing.T) {
	got, err := resolveNow("2025-10-24T15:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 24, 15, 30, 0, 0, time.UTC), got)

	_, err = resolveNow("yesterday")
	assert.Error(t, err)

	before := time.Now()
	got, err = resolveNow("")
	require.NoError(t, err)
	assert.False(t, got.Before(before), "empty --at resolves to the wall clock")
}
