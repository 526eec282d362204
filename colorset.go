package palette

import (
	"gonum.org/v1/gonum/floats"
)

// Palette is an ordered sequence of colors. Position is significant: it
// is the category index a color annotates. Duplicates are allowed.
type Palette []Color

const (
	// colorSetSize is the number of colors in a ColorSet.
	colorSetSize = 100
	// colorSetCols is the width of the conceptual ColorSet grid. Value
	// cycles once per row, hue advances along the whole set.
	colorSetCols = 10

	hueSpread  = 0.049 // hue sweep extends [-hueSpread, +hueSpread+hueStep]
	hueStep    = 0.001
	valueSpan  = 0.05 // value sweep step
	valueFloor = 0.4  // central value is clamped into [valueFloor, valueCeil]
	valueCeil  = 0.8
)

// ColorSet is a full 10x10 grid of colors related to one central color,
// in row-major order with value cycling fastest.
type ColorSet [colorSetSize]Color

// representativeIdx selects the 9 palette entries from a ColorSet.
// Positions are 1-based into the 100-entry grid and fixed: they spread
// the picks across the hue/value sweep so the resulting palette stays
// perceptually separated. Changing them changes every derived palette.
var representativeIdx = [9]int{68, 10, 65, 50, 100, 35, 84, 38, 14}

// Related derives the 100-entry set of colors surrounding center.
//
// The hue sweeps from h-0.049 to h+0.050 in 0.001 steps, wrapping
// modulo 1. The central value is clamped into [0.4, 0.8], then the
// value sweeps from v-0.25 to v+0.20 in 0.05 steps, cycling every ten
// entries. Saturation is held at the central color's.
//
// The derivation is deterministic: identical centers produce identical
// sets.
func Related(center Color) ColorSet {
	h0, s0, v0 := RGBToHSV(center)
	v0 = clampRange(v0, valueFloor, valueCeil)

	hues := make([]float64, colorSetSize)
	floats.Span(hues, h0-hueSpread, h0+hueSpread+hueStep)

	vals := make([]float64, colorSetCols)
	floats.Span(vals, v0-5*valueSpan, v0+4*valueSpan)

	var set ColorSet
	for i, h := range hues {
		set[i] = HSVToRGB(wrapHue(h), s0, vals[i%colorSetCols])
	}
	return set
}

// Representative returns the fixed 9-color palette drawn from the set.
func (s ColorSet) Representative() Palette {
	p := make(Palette, 0, len(representativeIdx))
	for _, idx := range representativeIdx {
		p = append(p, s[idx-1])
	}
	return p
}

// RelatedPalette derives the 9-color representative palette for center.
// Shorthand for Related(center).Representative().
func RelatedPalette(center Color) Palette {
	return Related(center).Representative()
}

// isRepresentative reports whether the 1-based grid position is one of
// the representative picks.
func isRepresentative(pos int) bool {
	for _, idx := range representativeIdx {
		if idx == pos {
			return true
		}
	}
	return false
}
