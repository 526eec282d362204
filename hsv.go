package palette

import "math"

// RGBToHSV converts a color to hue, saturation and value, all in [0, 1].
// Hue is a fraction of the full circle rather than degrees; pure red is
// hue 0, pure green 1/3, pure blue 2/3.
func RGBToHSV(c Color) (h, s, v float64) {
	r := clamp01(c.R)
	g := clamp01(c.G)
	b := clamp01(c.B)

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	d := max - min

	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = (g - b) / d / 6
	case g:
		h = ((b-r)/d + 2) / 6
	default:
		h = ((r-g)/d + 4) / 6
	}
	if h < 0 {
		h++
	}
	return h, s, v
}

// HSVToRGB converts hue, saturation and value in [0, 1] to a color.
// Hue wraps modulo 1, never clamps, so hue arithmetic that leaves [0, 1]
// is safe to pass in directly. Saturation and value are clamped.
func HSVToRGB(h, s, v float64) Color {
	h = wrapHue(h)
	s = clamp01(s)
	v = clamp01(v)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return RGB(v, t, p)
	case 1:
		return RGB(q, v, p)
	case 2:
		return RGB(p, v, t)
	case 3:
		return RGB(p, q, v)
	case 4:
		return RGB(t, p, v)
	default:
		return RGB(v, p, q)
	}
}

// wrapHue wraps a hue fraction into [0, 1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}
