package rez

import (
	"image"

	"github.com/bamiaux/rez"
	"golang.org/x/image/draw"

	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/resize/xdraw"
	"github.com/srlehn/bilerp/resample"
)

// Resizer uses "github.com/bamiaux/rez".
// Sources other than *image.RGBA are converted first. When rez refuses the
// conversion, x/image/draw's BiLinear is used instead.
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	src, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		src = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}
	m := image.NewRGBA(image.Rectangle{Max: size})
	// SIMD assembly on amd64
	if err := rez.Convert(m, src, rez.NewBilinearFilter()); err != nil {
		imgRet, errFallback := xdraw.BiLinear().Resize(img, size)
		if errFallback != nil {
			return nil, errors.Join(err, errFallback)
		}
		return imgRet, nil
	}
	return m, nil
}
