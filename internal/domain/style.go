package domain

import "fmt"

// Style selects the glyph used for lit cells when a clock value is drawn
// with block digits.
type Style int

const (
	StyleFull Style = iota
	StyleLight
	StyleMedium
	StyleDark
	StyleThick
	StyleCross
	StyleBraille
)

// styleCycle is the order the s key walks through. It intentionally differs
// from declaration order: the shades step from solid to light before the
// line-drawing glyphs.
var styleCycle = []Style{
	StyleFull,
	StyleDark,
	StyleMedium,
	StyleLight,
	StyleBraille,
	StyleThick,
	StyleCross,
}

// Next returns the style following s in the cycle, wrapping around.
func (s Style) Next() Style {
	for i, st := range styleCycle {
		if st == s {
			return styleCycle[(i+1)%len(styleCycle)]
		}
	}
	return StyleFull
}

// Symbol returns the glyph painted for lit cells.
func (s Style) Symbol() rune {
	switch s {
	case StyleLight:
		return '░'
	case StyleMedium:
		return '▒'
	case StyleDark:
		return '▓'
	case StyleThick:
		return '┃'
	case StyleCross:
		return '╬'
	case StyleBraille:
		return '⣿'
	default:
		return '█'
	}
}

func (s Style) String() string {
	switch s {
	case StyleFull:
		return "full"
	case StyleLight:
		return "light"
	case StyleMedium:
		return "medium"
	case StyleDark:
		return "dark"
	case StyleThick:
		return "thick"
	case StyleCross:
		return "cross"
	case StyleBraille:
		return "braille"
	default:
		return "unknown"
	}
}

// ParseStyle accepts a style name or its single-letter alias.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "full", "f":
		return StyleFull, nil
	case "light", "l":
		return StyleLight, nil
	case "medium", "m":
		return StyleMedium, nil
	case "dark", "d":
		return StyleDark, nil
	case "thick", "t":
		return StyleThick, nil
	case "cross", "c":
		return StyleCross, nil
	case "braille", "b":
		return StyleBraille, nil
	default:
		return StyleFull, fmt.Errorf("unknown style %q (want full, light, medium, dark, thick, cross or braille)", s)
	}
}

// MarshalText implements encoding.TextMarshaler for config round-tripping.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
