package palette

import (
	"image"
	"image/png"
	"io"
)

// Pixmap represents a rectangular pixel buffer for preview rendering.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, alpha always 255
}

// NewPixmap creates a new opaque white pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Clear(White)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = channel8(c.R)
	p.data[i+1] = channel8(c.G)
	p.data[i+2] = channel8(c.B)
	p.data[i+3] = 255
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates return black.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 4
	return Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
	}
}

// FillRect fills the intersection of the rectangle with the pixmap.
func (p *Pixmap) FillRect(x0, y0, x1, y1 int, c Color) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > p.width {
		x1 = p.width
	}
	if y1 > p.height {
		y1 = p.height
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r := channel8(c.R)
	g := channel8(c.G)
	b := channel8(c.B)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 255
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// channel8 converts a [0, 1] channel to its 8-bit level.
func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
