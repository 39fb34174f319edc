package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tock-cli/internal/adapters/tui"
	"github.com/xvierd/tock-cli/internal/domain"
)

var stopwatchCmd = &cobra.Command{
	Use:     "stopwatch [start]",
	Aliases: []string{"sw", "up"},
	Short:   "Count up from zero",
	Long: `Count up from zero (or from the given start value), showing elapsed
time in big block digits. The stopwatch stops once the display reaches
99:59:59.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStopwatch,
}

func runStopwatch(cmd *cobra.Command, args []string) error {
	var start time.Duration
	if len(args) > 0 {
		parsed, err := parseClockDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid start value %q: %w", args[0], err)
		}
		start = parsed
	}
	if start < 0 {
		return fmt.Errorf("start value must not be negative")
	}
	if start >= time.Duration(domain.MaxDuration) {
		return fmt.Errorf("start value must be below %s", domain.MaxDuration)
	}

	clock := domain.NewTimer(domain.Args{
		InitialValue: start,
		CurrentValue: start,
		TickValue:    tickResolution,
		Style:        app.config.Display.Style,
		WithDecis:    app.config.Display.WithDecis,
	})

	model := tui.NewModel(clock, tui.Options{
		Title:        "Stopwatch",
		Theme:        &app.config.Theme,
		TickInterval: tickResolution,
		OnDone: func() {
			if err := app.notifier.NotifyStopwatchLimit(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
			}
		},
	})

	return tui.Run(setupSignalHandler(), model)
}
