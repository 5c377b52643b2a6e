package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/display"
	"github.com/tasklens/tasklens/internal/ical"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	At     string
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <tasks-file>",
		Short: "Export the schedule as an iCalendar document",
		Long: `Render the schedule and write it as an iCalendar (.ics) document with
one all-day VEVENT per display event.

Example:
  tasklens export ./tasks.yaml -o ./tasks.ics
  tasklens export ./tasks.yaml --at 2025-10-24T00:00:00Z > tasks.ics`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "reference time for the overdue check (RFC 3339, default: now)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runExport(opts *ExportOptions, path string, stdout io.Writer) error {
	tasks, err := LoadTasks(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load tasks", err)
	}
	now, err := resolveNow(opts.At)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve reference time", err)
	}

	events := display.Schedule(tasks, now)
	slog.Debug("exporting calendar", "tasks", len(tasks), "events", len(events))

	w := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				slog.Error("error closing output file", "error", closeErr)
			}
		}()
		w = f
	}

	if err := ical.Encode(w, events); err != nil {
		return WrapExitError(ExitCommandError, "failed to write calendar", err)
	}
	if opts.Output != "" {
		fmt.Fprintf(stdout, "wrote %d event(s) to %s\n", len(events), opts.Output)
	}
	return nil
}
