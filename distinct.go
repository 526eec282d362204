package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// The weave lets a viewer judge palette separability by eye; the
// functions here put a number on it using CIE Lab distance.

// colorfulOf converts c for perceptual distance math.
func colorfulOf(c Color) colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// DistanceMatrix returns the pairwise Lab distance between palette
// entries, indexed [i][j] in palette order. The diagonal is zero.
func DistanceMatrix(p Palette) [][]float64 {
	m := make([][]float64, len(p))
	for i := range p {
		m[i] = make([]float64, len(p))
	}
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			d := colorfulOf(p[i]).DistanceLab(colorfulOf(p[j]))
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

// MinPairDistance returns the smallest Lab distance between any two
// distinct palette entries, a summary of how confusable the palette's
// worst pair is. Fewer than two entries is an error.
func MinPairDistance(p Palette) (float64, error) {
	if len(p) < 2 {
		return 0, ErrEmptyInput
	}
	min := -1.0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			d := colorfulOf(p[i]).DistanceLab(colorfulOf(p[j]))
			if min < 0 || d < min {
				min = d
			}
		}
	}
	return min, nil
}
