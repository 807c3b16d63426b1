// Package xdraw provides bilinear resizers using golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/bilerp/resample"
)

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resample.Resizer = (*resizer)(nil)

// BiLinear samples with a tent kernel over the whole source footprint.
func BiLinear() resample.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// ApproxBiLinear blends the four nearest source pixels. Faster, blurrier on
// downscaling.
func ApproxBiLinear() resample.Resizer {
	return &resizer{scaler: draw.ApproxBiLinear}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
