package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/bilerp/resample"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

// Resize expects both sides of size to be positive, nfnt keeps the aspect
// ratio for a zero side.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Bilinear), nil
}
