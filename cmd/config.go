package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tock-cli/internal/config"
	"github.com/xvierd/tock-cli/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the default duration, digit style and notifications",
	Long:  `Interactively configure the default countdown duration, the digit style, decisecond display and desktop notifications.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		cfg := app.config

		decisStatus := "off"
		if cfg.Display.WithDecis {
			decisStatus = "on"
		}
		notifStatus := "off"
		if cfg.Notifications.Enabled {
			notifStatus = "on"
			if cfg.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    Countdown duration:  %s\n", formatMinutes(time.Duration(cfg.Countdown.Duration)))
		fmt.Printf("    Digit style:         %s  %c\n", cfg.Display.Style, cfg.Display.Style.Symbol())
		fmt.Printf("    Deciseconds:         %s\n", decisStatus)
		fmt.Printf("    Notifications:       %s\n", notifStatus)
		if path, err := config.GetConfigPath(); err == nil {
			fmt.Println()
			fmt.Printf("    Config file:         %s\n", path)
		}
		fmt.Println()
		fmt.Println("  What would you like to change?")
		fmt.Println("    [1] Edit countdown duration")
		fmt.Println("    [2] Change digit style")
		fmt.Println("    [3] Toggle deciseconds")
		fmt.Println("    [n] Edit notifications")
		fmt.Println("    [q] Quit without saving")
		fmt.Print("  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "1":
			return editCountdownDuration(reader, cfg)
		case "2":
			return editStyle(reader, cfg)
		case "3":
			return toggleDecis(cfg)
		case "n":
			return editNotifications(reader, cfg)
		case "q", "":
			fmt.Println("  No changes made.")
			return nil
		default:
			return fmt.Errorf("invalid choice %q", choice)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func editCountdownDuration(reader *bufio.Reader, cfg *config.Config) error {
	current := time.Duration(cfg.Countdown.Duration)

	fmt.Printf("\n  Countdown duration [%s]: ", formatMinutes(current))
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	parsed, err := parseClockDuration(input)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", input, err)
	}
	if parsed <= 0 || parsed > time.Duration(domain.MaxDuration) {
		return fmt.Errorf("duration must be positive and at most %s", domain.MaxDuration)
	}

	cfg.Countdown.Duration = config.Duration(parsed)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: countdown duration %s\n", formatMinutes(parsed))
	return nil
}

func editStyle(reader *bufio.Reader, cfg *config.Config) error {
	styles := []domain.Style{
		domain.StyleFull,
		domain.StyleDark,
		domain.StyleMedium,
		domain.StyleLight,
		domain.StyleBraille,
		domain.StyleThick,
		domain.StyleCross,
	}

	fmt.Printf("\n  Current style: %s\n\n", cfg.Display.Style)
	for i, s := range styles {
		sym := s.Symbol()
		fmt.Printf("    [%d] %-8s %c%c%c\n", i+1, s, sym, sym, sym)
	}
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	var idx int
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(styles) {
		fmt.Println("  No changes made.")
		return nil
	}

	cfg.Display.Style = styles[idx-1]
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: digit style %s\n", cfg.Display.Style)
	return nil
}

func toggleDecis(cfg *config.Config) error {
	cfg.Display.WithDecis = !cfg.Display.WithDecis
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	status := "off"
	if cfg.Display.WithDecis {
		status = "on"
	}
	fmt.Printf("\n  Saved: deciseconds %s\n", status)
	return nil
}

func editNotifications(reader *bufio.Reader, cfg *config.Config) error {
	current := "off"
	if cfg.Notifications.Enabled {
		current = "on"
		if cfg.Notifications.Sound {
			current = "on (with sound)"
		}
	}

	fmt.Printf("\n  Current notifications: %s\n\n", current)
	fmt.Println("    [1] Off")
	fmt.Println("    [2] On (visual only)")
	fmt.Println("    [3] On (with sound)")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	switch choice {
	case "1":
		cfg.Notifications.Enabled = false
		cfg.Notifications.Sound = false
	case "2":
		cfg.Notifications.Enabled = true
		cfg.Notifications.Sound = false
	case "3":
		cfg.Notifications.Enabled = true
		cfg.Notifications.Sound = true
	default:
		fmt.Println("  No changes made.")
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	status := "off"
	if cfg.Notifications.Enabled {
		status = "on"
		if cfg.Notifications.Sound {
			status = "on (with sound)"
		}
	}
	fmt.Printf("\n  Saved: notifications %s\n", status)
	return nil
}
