// Package cmd provides the CLI commands for the Tock application.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	styleFlag string
	decisFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tock",
	Short: "Tock - A big-digit countdown and stopwatch for the terminal",
	Long: `Tock draws a clock in large block digits and keeps time in
deciseconds. It counts down or up, pauses, and lets you edit the
remaining time field by field without leaving the terminal.

Run "tock" with no arguments for an interactive launcher, or
"tock countdown 10m" to start a ten minute countdown directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runWizard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "Digit style: full, dark, medium, light, braille, thick, cross")
	rootCmd.PersistentFlags().BoolVar(&decisFlag, "decis", false, "Show deciseconds")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Tock\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(stopwatchCmd)
}

// parseClockDuration accepts Go duration syntax ("10m", "1h30m", "90s") as
// well as colon notation ("90", "1:30", "1:02:03"). Colon parts are weighted
// seconds, minutes, hours from the right.
func parseClockDuration(input string) (time.Duration, error) {
	if d, err := time.ParseDuration(input); err == nil {
		return d, nil
	}

	parts := strings.Split(input, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", input)
	}

	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	return total, nil
}

// formatMinutes formats a duration as a human-friendly string like "25m" or "1h30m".
func formatMinutes(d time.Duration) string {
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if d >= time.Minute {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
