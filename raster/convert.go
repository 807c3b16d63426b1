package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/bilerp/internal/consts"
	"github.com/srlehn/bilerp/internal/errors"
)

// FromImage copies img into a new Buffer. The result always starts at (0,0),
// whatever the origin of img's bounds.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	switch m := img.(type) {
	case *Buffer:
		if m == nil {
			return nil, errors.New(consts.ErrNilImage)
		}
		return m.Clone(), nil
	case *image.NRGBA:
		if m == nil {
			return nil, errors.New(consts.ErrNilImage)
		}
		return fromNRGBA(m)
	}

	// everything else goes through the draw package's color conversion
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return fromNRGBA(n)
}

func fromNRGBA(m *image.NRGBA) (*Buffer, error) {
	r := m.Bounds()
	buf, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.height; y++ {
		row := buf.Row(y)
		off := m.PixOffset(r.Min.X, r.Min.Y+y)
		for x := range row {
			s := m.Pix[off+4*x : off+4*x+4 : off+4*x+4]
			row[x] = Pixel{s[0], s[1], s[2], s[3]}
		}
	}
	return buf, nil
}

// ToNRGBA copies the buffer into an *image.NRGBA, the form the standard
// encoders handle without per-pixel color conversion.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	n := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.Height(); y++ {
		off := n.PixOffset(0, y)
		for x, p := range b.Row(y) {
			copy(n.Pix[off+4*x:off+4*x+4], p[:])
		}
	}
	return n
}
