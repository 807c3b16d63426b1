package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/bilerp/resample"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	Sequential bool
}

var _ resample.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: size})
	g := gift.New(gift.Resize(size.X, size.Y, gift.LinearResampling))
	g.SetParallelization(r == nil || !r.Sequential)
	g.Draw(m, img)
	return m, nil
}
