package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/task"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
}

// Problem describes one defect found in a task record.
type Problem struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <tasks-file>",
		Short: "Check a task file for records the engine cannot display meaningfully",
		Long: `Load a task file and report records the display engine would accept but
could not place meaningfully on a calendar: unknown statuses, missing
timestamps, out-of-range priorities. The engine itself never validates,
so run check before trusting a schedule built from untrusted data.

Example:
  tasklens check ./tasks.yaml
  tasklens check ./tasks.json --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCheck(opts *CheckOptions, path string, w io.Writer) error {
	tasks, err := LoadTasks(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load tasks", err)
	}

	problems := checkTasks(tasks)

	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		report := struct {
			Tasks    int       `json:"tasks"`
			Problems []Problem `json:"problems"`
		}{Tasks: len(tasks), Problems: problems}
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, p := range problems {
			fmt.Fprintf(w, "task %s: %s\n", p.TaskID, p.Message)
		}
		fmt.Fprintf(w, "%d task(s), %d problem(s)\n", len(tasks), len(problems))
	}

	if len(problems) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d problem(s) found", len(problems)))
	}
	return nil
}

func checkTasks(tasks []task.Task) []Problem {
	problems := []Problem{}
	add := func(id, format string, args ...any) {
		problems = append(problems, Problem{TaskID: id, Message: fmt.Sprintf(format, args...)})
	}

	for _, t := range tasks {
		if !t.Status.Valid() {
			add(t.ID, "unknown status %q", t.Status)
		}
		if t.DueDate.IsZero() {
			add(t.ID, "missing due date")
		}
		if t.CreatedAt.IsZero() {
			add(t.ID, "missing creation timestamp")
		}
		if t.Priority < 1 || t.Priority > 10 {
			add(t.ID, "priority %d outside 1..10", t.Priority)
		}
		if t.StartDate != nil && t.StartDate.IsZero() {
			add(t.ID, "start date set but zero")
		}
	}
	return problems
}
