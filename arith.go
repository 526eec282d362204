package palette

import "errors"

// ErrEmptyInput reports an aggregate operation applied to zero colors.
var ErrEmptyInput = errors.New("palette: empty input")

// Sum adds two colors per channel in RGB space. Each channel saturates
// at 1 rather than wrapping.
func Sum(a, b Color) Color {
	return Color{
		R: clamp01(a.R + b.R),
		G: clamp01(a.G + b.G),
		B: clamp01(a.B + b.B),
	}
}

// Mean returns the per-channel arithmetic mean of colors.
// Channels stay in float form; rounding to 8-bit levels happens only
// when the result is formatted with Hex.
func Mean(colors []Color) (Color, error) {
	if len(colors) == 0 {
		return Color{}, ErrEmptyInput
	}
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return Color{R: r / n, G: g / n, B: b / n}, nil
}
