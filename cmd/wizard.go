package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tock-cli/internal/adapters/tui"
)

// runWizard implements the interactive launcher for the bare "tock" command.
func runWizard(cmd *cobra.Command, args []string) error {
	defaultDur := formatMinutes(time.Duration(app.config.Countdown.Duration))

	items := []tui.LauncherItem{
		{
			Label:       "Countdown",
			Desc:        fmt.Sprintf("Count down from %s", defaultDur),
			Prompt:      "Duration:",
			Placeholder: fmt.Sprintf("%s for default", defaultDur),
		},
		{Label: "Stopwatch", Desc: "Count up from zero"},
		{Label: "Config", Desc: "Edit defaults"},
	}

	choice := tui.RunLauncher("Tock:", items, app.config.Display.Style.Symbol(), &app.config.Theme)
	if choice.Aborted {
		return nil
	}

	switch choice.Choice {
	case 1: // Stopwatch
		return runStopwatch(cmd, nil)
	case 2: // Config
		return configCmd.RunE(cmd, nil)
	}

	// Countdown: enter on an empty prompt keeps the configured default.
	if choice.Value == "" {
		return runCountdown(cmd, nil)
	}
	return runCountdown(cmd, []string{choice.Value})
}
