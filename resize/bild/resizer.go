package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/bilerp/resample"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return transform.Resize(img, size.X, size.Y, transform.Linear), nil
}
