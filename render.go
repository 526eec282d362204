package palette

import "math"

// The renderers below rasterize plot records into a Pixmap as a quick
// in-memory preview. They are deliberately minimal: no axes, no text,
// no legends. A real charting collaborator consumes the records
// directly and owns all layout concerns.

// RenderGrid draws tiles as solid squares, cell pixels per tile.
func RenderGrid(tiles []Tile, cell int) *Pixmap {
	maxX, maxY := 0, 0
	for _, t := range tiles {
		if t.X > maxX {
			maxX = t.X
		}
		if t.Y > maxY {
			maxY = t.Y
		}
	}
	pm := NewPixmap((maxX+1)*cell, (maxY+1)*cell)
	for _, t := range tiles {
		pm.FillRect(t.X*cell, t.Y*cell, (t.X+1)*cell, (t.Y+1)*cell, t.Color)
	}
	Logger().Debug("rendered grid preview",
		"tiles", len(tiles), "width", pm.Width(), "height", pm.Height())
	return pm
}

// RenderScatter draws points as filled discs on a size x size pixmap.
// Point coordinates are taken from the chroma plane, [-1, 1] on both
// axes, with y increasing upward. Anchor points are drawn first so
// palette points stay on top.
func RenderScatter(points, anchors []Point, size int) *Pixmap {
	pm := NewPixmap(size, size)
	radius := size / 50
	if radius < 2 {
		radius = 2
	}
	for _, pt := range anchors {
		drawDisc(pm, pt, size, radius)
	}
	for _, pt := range points {
		drawDisc(pm, pt, size, radius)
	}
	Logger().Debug("rendered scatter preview",
		"points", len(points), "anchors", len(anchors), "size", size)
	return pm
}

// RenderWeave draws weave rectangles scaled by cell pixels per unit.
func RenderWeave(rects []Rect, cell int) *Pixmap {
	var maxX, maxY float64
	for _, r := range rects {
		maxX = math.Max(maxX, r.XMax)
		maxY = math.Max(maxY, r.YMax)
	}
	pm := NewPixmap(int(math.Ceil(maxX))*cell, int(math.Ceil(maxY))*cell)
	for _, r := range rects {
		pm.FillRect(
			int(math.Round(r.XMin*float64(cell))),
			int(math.Round(r.YMin*float64(cell))),
			int(math.Round(r.XMax*float64(cell))),
			int(math.Round(r.YMax*float64(cell))),
			r.Color,
		)
	}
	Logger().Debug("rendered weave preview",
		"rects", len(rects), "width", pm.Width(), "height", pm.Height())
	return pm
}

// drawDisc plots one scatter point, mapping plane coordinates to pixels.
func drawDisc(pm *Pixmap, pt Point, size, radius int) {
	cx := int(math.Round((pt.X + 1) / 2 * float64(size-1)))
	cy := int(math.Round((1 - pt.Y) / 2 * float64(size-1)))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				pm.SetPixel(cx+dx, cy+dy, pt.Color)
			}
		}
	}
}
