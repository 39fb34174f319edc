// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/tock-cli/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled, preceded by an
// audible beep when sound is on.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if n.cfg.Sound {
		// The toast matters more than the beep; a muted system bell
		// should not suppress it.
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}

	return beeep.Notify(title, message, "")
}

// NotifyCountdownDone displays a notification when a countdown reaches zero.
func (n *Notifier) NotifyCountdownDone(initial string) error {
	title := "⏱ Time's up!"
	message := fmt.Sprintf("Your %s countdown has finished.", initial)
	return n.Notify(title, message)
}

// NotifyStopwatchLimit displays a notification when a stopwatch hits the
// longest value it can show.
func (n *Notifier) NotifyStopwatchLimit() error {
	title := "⏱ Stopwatch stopped"
	message := "The stopwatch reached 99:59:59 and cannot count further."
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
