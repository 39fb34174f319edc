package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xvierd/tock-cli/internal/adapters/notification"
	"github.com/xvierd/tock-cli/internal/config"
	"github.com/xvierd/tock-cli/internal/domain"
)

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	notifier *notification.Notifier
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration and sets up the adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Command-line flags override the configured display settings.
	if styleFlag != "" {
		style, err := domain.ParseStyle(styleFlag)
		if err != nil {
			return fmt.Errorf("invalid style: %w", err)
		}
		app.config.Display.Style = style
	}
	if rootCmd.PersistentFlags().Changed("decis") {
		app.config.Display.WithDecis = decisFlag
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
