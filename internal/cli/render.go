package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tasklens/tasklens/internal/display"
	"github.com/tasklens/tasklens/internal/task"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	At string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <tasks-file>",
		Short: "Project tasks into calendar display events",
		Long: `Project every task in the file onto its display interval, forecast
recurring tasks, and print the flattened schedule.

Example:
  tasklens render ./tasks.yaml
  tasklens render ./tasks.json --at 2025-10-24T00:00:00Z --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "reference time for the overdue check (RFC 3339, default: now)")

	return cmd
}

func runRender(opts *RenderOptions, path string, w io.Writer) error {
	tasks, err := LoadTasks(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load tasks", err)
	}
	now, err := resolveNow(opts.At)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve reference time", err)
	}

	slog.Debug("rendering schedule", "tasks", len(tasks), "at", now)
	events := display.Schedule(tasks, now)
	slog.Debug("schedule rendered", "events", len(events))

	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	return writeEventTable(w, events)
}

func writeEventTable(w io.Writer, events []display.Event) error {
	for _, ev := range events {
		marker := ""
		if ev.Resource.IsOverdue {
			marker = "  OVERDUE"
		}
		_, err := fmt.Fprintf(w, "%s → %s  %s  %s [%s]%s\n",
			ev.Start.Format("2006-01-02"),
			ev.End.Format("2006-01-02"),
			ev.ID,
			ev.Title,
			statusTitle(ev.Resource.Status),
			marker,
		)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d event(s)\n", len(events))
	return err
}

// statusTitle renders a workflow state for humans: "IN_PROGRESS"
// becomes "In Progress".
func statusTitle(s task.Status) string {
	return cases.Title(language.English).String(strings.ToLower(s.Human()))
}
