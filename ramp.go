package palette

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// rampSize is the number of entries in a Ramp.
	rampSize = 1001
	// rampMid is the index of the midpoint color, used for
	// zero-variance inputs.
	rampMid = 500
)

// DefaultAnchors is the default ramp anchor sequence, cold to hot.
var DefaultAnchors = Palette{
	FromColor(colornames.Darkblue),
	FromColor(colornames.Dodgerblue),
	FromColor(colornames.Gray),
	FromColor(colornames.Orange),
	FromColor(colornames.Red),
}

// DefaultMissing is the color assigned to missing values.
var DefaultMissing = Black

// ErrDegenerateRange reports a resolved value range with min >= max.
var ErrDegenerateRange = errors.New("palette: degenerate value range")

// Ramp is a fixed 1001-entry color lookup ramp. Index 0 is the low end
// of the mapped value range, index 1000 the high end.
type Ramp [rampSize]Color

// NewRamp interpolates a ramp across the anchor colors. Anchors are
// spaced evenly in index space (anchor k of n sits at index
// round(k/(n-1)*1000)) and interpolated piecewise-linearly in RGB.
// At least two anchors are required.
func NewRamp(anchors Palette) (*Ramp, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("palette: need at least 2 ramp anchors, got %d", len(anchors))
	}

	n := len(anchors)
	pos := make([]int, n)
	for k := range anchors {
		pos[k] = int(math.Round(float64(k) / float64(n-1) * (rampSize - 1)))
	}

	var r Ramp
	for k := 0; k < n-1; k++ {
		lo, hi := pos[k], pos[k+1]
		for i := lo; i <= hi; i++ {
			t := float64(i-lo) / float64(hi-lo)
			r[i] = anchors[k].Lerp(anchors[k+1], t)
		}
	}
	return &r, nil
}

// MustRamp is like NewRamp but panics on invalid anchors.
// Intended for package-level ramps.
func MustRamp(anchors Palette) *Ramp {
	r, err := NewRamp(anchors)
	if err != nil {
		panic(err)
	}
	return r
}

// MapOption configures a MapValues call.
type MapOption func(*mapConfig)

type mapConfig struct {
	min, max float64 // NaN when unset
	missing  Color
}

// WithMin fixes the low end of the value range. Values below it are
// clamped up. By default the minimum of the non-missing input is used.
func WithMin(v float64) MapOption {
	return func(cfg *mapConfig) { cfg.min = v }
}

// WithMax fixes the high end of the value range. Values above it are
// clamped down. By default the maximum of the non-missing input is used.
func WithMax(v float64) MapOption {
	return func(cfg *mapConfig) { cfg.max = v }
}

// WithMissingColor sets the color assigned to NaN entries.
// The default is DefaultMissing.
func WithMissingColor(c Color) MapOption {
	return func(cfg *mapConfig) { cfg.missing = c }
}

// MapValues assigns a ramp color to every entry of x, preserving input
// order. NaN entries are missing and always map to the missing color.
//
// Degenerate inputs short-circuit instead of failing: if every
// non-missing value equals the resolved minimum and the range is still
// open, every entry gets the index-0 color; a single non-missing value,
// or several with zero variance, get the midpoint color. Only an
// explicitly supplied range with min >= max is an error.
func (r *Ramp) MapValues(x []float64, opts ...MapOption) ([]Color, error) {
	cfg := mapConfig{min: math.NaN(), max: math.NaN(), missing: DefaultMissing}
	for _, opt := range opts {
		opt(&cfg)
	}

	vals := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}

	out := make([]Color, len(x))
	if len(vals) == 0 {
		for i := range out {
			out[i] = cfg.missing
		}
		return out, nil
	}

	haveMin := !math.IsNaN(cfg.min)
	haveMax := !math.IsNaN(cfg.max)
	min := cfg.min
	if !haveMin {
		min = floats.Min(vals)
	}
	max := cfg.max
	if !haveMax {
		max = floats.Max(vals)
	}

	// An explicitly degenerate range is a caller error. Bounds that
	// collapse because the data itself is degenerate fall through to
	// the shortcuts below instead.
	if min > max || (haveMin && haveMax && min >= max) {
		return nil, fmt.Errorf("%w: min %v >= max %v", ErrDegenerateRange, min, max)
	}

	for i, v := range vals {
		vals[i] = clampRange(v, min, max)
	}

	allMin := true
	for _, v := range vals {
		if v != min {
			allMin = false
			break
		}
	}

	var at func(v float64) Color
	switch {
	case allMin && max > min:
		at = func(float64) Color { return r[0] }
	case len(vals) == 1 || stat.Variance(vals, nil) == 0:
		at = func(float64) Color { return r[rampMid] }
	default:
		at = func(v float64) Color {
			idx := int(math.Round((clampRange(v, min, max) - min) / (max - min) * (rampSize - 1)))
			if idx < 0 {
				idx = 0
			}
			if idx > rampSize-1 {
				idx = rampSize - 1
			}
			return r[idx]
		}
	}

	for i, v := range x {
		if math.IsNaN(v) {
			out[i] = cfg.missing
			continue
		}
		out[i] = at(v)
	}
	return out, nil
}
