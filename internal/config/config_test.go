package config

import (
	"testing"
	"time"

	"github.com/xvierd/tock-cli/internal/domain"
)

func TestDefaultConfig_Countdown(t *testing.T) {
	cfg := DefaultConfig()
	if got := time.Duration(cfg.Countdown.Duration); got != 10*time.Minute {
		t.Errorf("expected default countdown duration 10m, got %v", got)
	}
}

func TestDefaultConfig_Display(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Display.Style != domain.StyleFull {
		t.Errorf("expected default style full, got %v", cfg.Display.Style)
	}
	if cfg.Display.WithDecis {
		t.Error("deciseconds should be off by default")
	}
}

func TestDefaultConfig_Notifications(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
	if cfg.Notifications.Sound {
		t.Error("sound should be off by default")
	}
}

func TestDurationTextRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "1m30s" {
		t.Errorf("MarshalText = %q, want %q", text, "1m30s")
	}

	var back Duration
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != d {
		t.Errorf("round trip: %v -> %v", d, back)
	}
}

func TestDurationUnmarshalRejectsGarbage(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("expected error for unparseable duration")
	}
}
