// Package palette generates and projects color palettes for annotating
// categorical data in scientific plots.
//
// # Overview
//
// Everything in this package is a pure, stateless transformation over
// small color values. One central color is expanded into a 100-entry
// grid of related colors and a 9-entry representative palette; numeric
// arrays are mapped onto an interpolated color ramp; colors are
// projected onto the alpha-beta chroma plane for similarity plots.
//
// # Quick Start
//
//	import "github.com/gogpu/palette"
//
//	center, err := palette.Parse("dodgerblue")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Nine well-separated colors around the center.
//	pal := palette.RelatedPalette(center)
//
//	// Map measurements onto the default cold-to-hot ramp.
//	ramp := palette.MustRamp(palette.DefaultAnchors)
//	colors, err := ramp.MapValues([]float64{0.2, 0.8, math.NaN()})
//
// # Presentation boundary
//
// The package never draws plots. Each visualization is emitted as flat
// record lists (Tile, Point, Rect) for a charting collaborator to
// consume; RenderGrid, RenderScatter and RenderWeave provide optional
// in-memory raster previews of the same records.
//
// # Concurrency
//
// All operations are pure functions over immutable value types and are
// safe for concurrent use without locking.
package palette

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
