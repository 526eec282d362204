package palette

// The plot record types carry everything a rendering collaborator needs
// to draw a display: positions, colors and label hints. The library
// never draws through them itself; RenderGrid and friends provide an
// optional in-memory preview.

// Tile is one colored cell of a grid display.
type Tile struct {
	X, Y  int
	Color Color
	// Label is the suggested cell annotation (the color's hex form).
	Label string
	// LightLabel hints that the label should be drawn light-on-dark.
	LightLabel bool
}

// Point is one marker of a scatter display.
type Point struct {
	X, Y  float64
	Color Color
}

// Rect is one filled rectangle of a weave display.
type Rect struct {
	XMin, XMax, YMin, YMax float64
	Color                  Color
}

// GridData lays the set out as its 10x10 grid. X is the position within
// the value cycle, Y the hue row. Cells holding a representative pick
// are hinted light-on-dark so their labels stand out.
func (s ColorSet) GridData() []Tile {
	tiles := make([]Tile, len(s))
	for i, c := range s {
		tiles[i] = Tile{
			X:          i % colorSetCols,
			Y:          i / colorSetCols,
			Color:      c,
			Label:      c.Hex(),
			LightLabel: isRepresentative(i + 1),
		}
	}
	return tiles
}

// GridData lays the palette out as a single horizontal strip. Dark
// entries (HSV value below 0.5) are hinted light-on-dark.
func (p Palette) GridData() []Tile {
	tiles := make([]Tile, len(p))
	for i, c := range p {
		_, _, v := RGBToHSV(c)
		tiles[i] = Tile{
			X:          i,
			Y:          0,
			Color:      c,
			Label:      c.Hex(),
			LightLabel: v < 0.5,
		}
	}
	return tiles
}

// ChromaScatter returns the chroma-plane scatter points for p, order
// preserved. When withAnchors is set, the PureAnchors projections are
// returned as a secondary point list for orientation.
func ChromaScatter(p Palette, withAnchors bool) (points, anchors []Point) {
	points = make([]Point, len(p))
	for i, c := range p {
		pt := AlphaBeta(c)
		points[i] = Point{X: pt.Alpha, Y: pt.Beta, Color: c}
	}
	if withAnchors {
		anchors = make([]Point, len(PureAnchors))
		for i, c := range PureAnchors {
			pt := AlphaBeta(c)
			anchors[i] = Point{X: pt.Alpha, Y: pt.Beta, Color: c}
		}
	}
	return points, anchors
}

// Weave builds the n x n juxtaposition matrix for p: cell (i, j) is
// filled with color i and overlaid with a vertical band of color j, so
// every ordered color pair appears side by side once. Cells are unit
// squares; column j spans x in [j, j+1], row i spans y in [i, i+1].
func Weave(p Palette) []Rect {
	n := len(p)
	rects := make([]Rect, 0, 2*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x0, y0 := float64(j), float64(i)
			rects = append(rects, Rect{
				XMin: x0, XMax: x0 + 1,
				YMin: y0, YMax: y0 + 1,
				Color: p[i],
			})
			rects = append(rects, Rect{
				XMin: x0 + 1.0/3, XMax: x0 + 2.0/3,
				YMin: y0, YMax: y0 + 1,
				Color: p[j],
			})
		}
	}
	return rects
}
