package domain

// Format identifies which time fields a clock value occupies on screen.
// Formats are ordered by how much of the value they show, so comparisons
// like format <= FormatSs read as "shows at most seconds".
type Format int

const (
	// FormatS shows a single seconds digit (0-9).
	FormatS Format = iota
	// FormatSs shows two seconds digits (10-59).
	FormatSs
	// FormatMSs shows a single minutes digit and seconds.
	FormatMSs
	// FormatMmSs shows two minutes digits and seconds.
	FormatMmSs
	// FormatHMmSs shows a single hours digit, minutes and seconds.
	FormatHMmSs
	// FormatHhMmSs shows two hours digits, minutes and seconds.
	FormatHhMmSs
)

// FormatFor returns the narrowest format that fits d. The cached format on
// a clock is always FormatFor of its current value.
func FormatFor(d Duration) Format {
	switch {
	case d.Hours() >= 10:
		return FormatHhMmSs
	case d.Hours() >= 1:
		return FormatHMmSs
	case d.Minutes() >= 10:
		return FormatMmSs
	case d.Minutes() >= 1:
		return FormatMSs
	case d.Seconds() >= 10:
		return FormatSs
	default:
		return FormatS
	}
}

func (f Format) String() string {
	switch f {
	case FormatS:
		return "s"
	case FormatSs:
		return "ss"
	case FormatMSs:
		return "m:ss"
	case FormatMmSs:
		return "mm:ss"
	case FormatHMmSs:
		return "h:mm:ss"
	case FormatHhMmSs:
		return "hh:mm:ss"
	default:
		return "unknown"
	}
}
