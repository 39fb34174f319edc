package domain

import (
	"fmt"
	"time"
)

// Duration is an elapsed time with decisecond resolution. All clock values
// are plain durations counted from zero; wall-clock time never enters the
// domain.
type Duration time.Duration

// Unit steps used by ticking and editing.
const (
	OneDecisecond = Duration(100 * time.Millisecond)
	OneSecond     = Duration(time.Second)
	OneMinute     = Duration(time.Minute)
	OneHour       = Duration(time.Hour)
)

// MaxDuration is the largest displayable value: one second short of 100
// hours, i.e. 99:59:59.0.
const MaxDuration = Duration(100*time.Hour - time.Second)

// NewDuration clamps d into [0, MaxDuration] and truncates it to
// decisecond resolution.
func NewDuration(d time.Duration) Duration {
	if d < 0 {
		return 0
	}
	if Duration(d) > MaxDuration {
		return MaxDuration
	}
	return Duration(d.Truncate(100 * time.Millisecond))
}

// SaturatingAdd returns d+other capped at MaxDuration.
func (d Duration) SaturatingAdd(other Duration) Duration {
	if d > MaxDuration-other {
		return MaxDuration
	}
	return d + other
}

// SaturatingSub returns d-other floored at zero.
func (d Duration) SaturatingSub(other Duration) Duration {
	if d < other {
		return 0
	}
	return d - other
}

// Hours returns the whole hours of d. Never exceeds 99 for values within
// range.
func (d Duration) Hours() int {
	return int(time.Duration(d) / time.Hour)
}

// Minutes returns the minutes within the current hour (0-59).
func (d Duration) Minutes() int {
	return int(time.Duration(d) % time.Hour / time.Minute)
}

// Seconds returns the seconds within the current minute (0-59).
func (d Duration) Seconds() int {
	return int(time.Duration(d) % time.Minute / time.Second)
}

// Decis returns the deciseconds within the current second (0-9).
func (d Duration) Decis() int {
	return int(time.Duration(d) % time.Second / (100 * time.Millisecond))
}

// Millis returns the total milliseconds of d.
func (d Duration) Millis() int64 {
	return int64(time.Duration(d) / time.Millisecond)
}

// IsZero reports whether d is exactly zero.
func (d Duration) IsZero() bool {
	return d == 0
}

// String renders d trimmed to its magnitude: "7", "42", "3:07", "59:59",
// "1:02:03", "99:59:59". Deciseconds are a display concern and left to the
// caller.
func (d Duration) String() string {
	h, m, s := d.Hours(), d.Minutes(), d.Seconds()
	switch {
	case h > 0:
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	case m > 0:
		return fmt.Sprintf("%d:%02d", m, s)
	default:
		return fmt.Sprintf("%d", s)
	}
}
