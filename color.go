package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an opaque color with red, green, and blue components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements the standard color.Color interface.
// Components are clamped to [0, 1] before conversion.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math.Round(clamp01(c.R) * 65535))
	g = uint32(math.Round(clamp01(c.G) * 65535))
	b = uint32(math.Round(clamp01(c.B) * 65535))
	return r, g, b, 65535
}

// FromColor converts a standard color.Color to Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// ErrInvalidColor reports input that is neither a hex string nor a
// recognized color name.
var ErrInvalidColor = errors.New("palette: invalid color")

// Parse interprets s as a color. It accepts hex strings in the forms
// "#RRGGBB", "RRGGBB" and short "#RGB" (case-insensitive), and the
// SVG 1.1 color names ("red", "dodgerblue", ...).
func Parse(s string) (Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for package-level color tables.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex is a helper for hex parsing. It reports whether every byte
// of s is a hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Hex formats the color as uppercase "#RRGGBB". Each component is
// clamped to [0, 1] and rounded to the nearest of 256 levels.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(clamp01(c.R)*255)),
		uint8(math.Round(clamp01(c.G)*255)),
		uint8(math.Round(clamp01(c.B)*255)))
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clampRange clamps a value to [lo, hi] range.
func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
)
