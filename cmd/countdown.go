package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tock-cli/internal/adapters/tui"
	"github.com/xvierd/tock-cli/internal/domain"
)

// tickResolution is how often the interface advances the clock.
const tickResolution = 100 * time.Millisecond

var durationFlag string

var countdownCmd = &cobra.Command{
	Use:     "countdown [duration]",
	Aliases: []string{"c", "down"},
	Short:   "Count down from a duration",
	Long: `Count down from the given duration to zero, showing the remaining
time in big block digits. Accepts Go duration syntax ("10m", "1h30m")
or colon notation ("1:30", "1:02:03"). Without an argument the
configured default duration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCountdown,
}

func init() {
	countdownCmd.Flags().StringVarP(&durationFlag, "duration", "d", "", "Countdown duration (overrides the configured default)")
}

func runCountdown(cmd *cobra.Command, args []string) error {
	initial := time.Duration(app.config.Countdown.Duration)
	if durationFlag != "" {
		parsed, err := parseClockDuration(durationFlag)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", durationFlag, err)
		}
		initial = parsed
	}
	if len(args) > 0 {
		parsed, err := parseClockDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[0], err)
		}
		initial = parsed
	}
	if initial <= 0 {
		return fmt.Errorf("countdown duration must be positive")
	}
	if initial > time.Duration(domain.MaxDuration) {
		return fmt.Errorf("countdown duration must be at most %s", domain.MaxDuration)
	}

	clock := domain.NewCountdown(domain.Args{
		InitialValue: initial,
		CurrentValue: initial,
		TickValue:    tickResolution,
		Style:        app.config.Display.Style,
		WithDecis:    app.config.Display.WithDecis,
	})

	model := tui.NewModel(clock, tui.Options{
		Title:        "Countdown",
		Theme:        &app.config.Theme,
		TickInterval: tickResolution,
		OnDone: func() {
			if err := app.notifier.NotifyCountdownDone(clock.InitialValue().String()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
			}
		},
	})

	return tui.Run(setupSignalHandler(), model)
}
