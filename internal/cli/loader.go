package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tasklens/tasklens/internal/display"
	"github.com/tasklens/tasklens/internal/task"
)

// LoadTasks reads a task collection from a YAML or JSON file, chosen by
// extension. Tasks that arrive without an identifier are assigned a
// UUIDv7 so every display event ends up addressable.
func LoadTasks(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var tasks []task.Task
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported task file extension %q (want .yaml, .yml or .json)", ext)
	}

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.Must(uuid.NewV7()).String()
		}
	}
	return tasks, nil
}

// resolveNow turns the --at flag into the engine's reference time.
// Empty means the wall clock.
func resolveNow(at string) (time.Time, error) {
	if at == "" {
		return display.SystemClock{}.Now(), nil
	}
	now, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference time %q: %w", at, err)
	}
	return now, nil
}
