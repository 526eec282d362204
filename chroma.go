package palette

import "math"

// ChromaPoint is the position of a color on the alpha-beta chroma
// plane, a linear projection of RGB that discards brightness. Both
// coordinates lie in [-1, 1]. It is always recomputed from the color,
// never stored alongside it.
type ChromaPoint struct {
	Alpha, Beta float64
}

// AlphaBeta projects c onto the chroma plane:
//
//	alpha = r - (g+b)/2
//	beta  = sqrt(3)/2 * (g-b)
//
// Colors that differ only in brightness project to nearby points, so
// distances on the plane reflect hue and saturation similarity.
func AlphaBeta(c Color) ChromaPoint {
	r := clamp01(c.R)
	g := clamp01(c.G)
	b := clamp01(c.B)
	return ChromaPoint{
		Alpha: r - 0.5*(g+b),
		Beta:  math.Sqrt(3) / 2 * (g - b),
	}
}

// ProjectPalette projects every palette entry onto the chroma plane,
// order preserved.
func ProjectPalette(p Palette) []ChromaPoint {
	pts := make([]ChromaPoint, len(p))
	for i, c := range p {
		pts[i] = AlphaBeta(c)
	}
	return pts
}

// PureAnchors are the six fully saturated primaries and secondaries.
// Projected alongside a palette they orient the chroma plane; they are
// not part of any derived palette.
var PureAnchors = Palette{Red, Yellow, Green, Cyan, Blue, Magenta}
