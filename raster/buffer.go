// Package raster provides the in-memory pixel buffer the resampler works on.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/srlehn/bilerp/internal/errors"
)

var _ draw.Image = (*Buffer)(nil)

// Buffer is a row-major grid of Pixels.
//
// A Buffer with a zero side is valid but empty; it has no pixels.
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

// New allocates a zeroed width x height buffer.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf(`negative buffer size %dx%d`, width, height)
	}
	if width == 0 || height == 0 {
		return &Buffer{width: width, height: height}, nil
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

func (b *Buffer) Width() int {
	if b == nil {
		return 0
	}
	return b.width
}

func (b *Buffer) Height() int {
	if b == nil {
		return 0
	}
	return b.height
}

func (b *Buffer) Size() image.Point { return image.Point{X: b.Width(), Y: b.Height()} }

// Empty reports whether the buffer holds no pixels.
func (b *Buffer) Empty() bool { return b.Width() == 0 || b.Height() == 0 }

// Pixel returns the pixel at (x, y).
// The coordinates must lie inside the buffer.
func (b *Buffer) Pixel(x, y int) Pixel { return b.pix[y*b.width+x] }

// SetPixel stores p at (x, y).
// The coordinates must lie inside the buffer.
func (b *Buffer) SetPixel(x, y int, p Pixel) { b.pix[y*b.width+x] = p }

// Row returns row y. Writes to the returned slice modify the buffer.
func (b *Buffer) Row(y int) []Pixel {
	i := y * b.width
	return b.pix[i : i+b.width : i+b.width]
}

func (b *Buffer) inside(x, y int) bool {
	return b != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

// image.Image / draw.Image

func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width(), b.Height()) }

func (b *Buffer) At(x, y int) color.Color {
	if !b.inside(x, y) {
		return color.NRGBA{}
	}
	return b.Pixel(x, y).NRGBA()
}

func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.inside(x, y) {
		return
	}
	b.SetPixel(x, y, PixelFromColor(c))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	c := &Buffer{width: b.width, height: b.height}
	if len(b.pix) > 0 {
		c.pix = make([]Pixel, len(b.pix))
		copy(c.pix, b.pix)
	}
	return c
}
