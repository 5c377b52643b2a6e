package harness

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tasklens/tasklens/internal/task"
)

// Scenario defines one conformance test case for the display engine.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden
	// file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Now is the frozen reference instant used by the overdue check.
	Now time.Time `yaml:"now"`

	// Tasks is the input task collection, in schedule order.
	Tasks []task.Task `yaml:"tasks"`

	// Assertions validate the resulting schedule. Supported types:
	// event_count, event_ids, overdue_ids.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if s.Now.IsZero() {
		return nil, fmt.Errorf("scenario %s: now is required", path)
	}
	return &s, nil
}
