package resample

import (
	"image"

	"github.com/srlehn/bilerp/internal/consts"
	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/raster"
)

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var _ Resizer = (*Resampler)(nil)

// Resize converts img to a raster.Buffer and scales it to size.
// The returned image is a *raster.Buffer.
func (r *Resampler) Resize(img image.Image, size image.Point) (image.Image, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	if img == nil {
		return nil, errors.WithKind(ErrInvalidSource, consts.ErrNilImage)
	}
	src, err := raster.FromImage(img)
	if err != nil {
		return nil, errors.WithKind(ErrInvalidSource, err)
	}
	dst, err := r.ScaleTo(src, size.X, size.Y)
	if err != nil {
		return nil, err
	}
	return dst, nil
}
