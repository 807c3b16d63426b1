// Package bilerp scales images by a relative factor with bilinear interpolation.
//
// The resampling itself lives in package resample; this package connects it
// to image.Image values and image files.
package bilerp

import (
	"image"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/srlehn/bilerp/codec"
	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/raster"
	"github.com/srlehn/bilerp/resample"
	"github.com/srlehn/bilerp/resize"
)

// Resize scales img by scale. Both dimensions are floor(side*scale).
func Resize(img image.Image, scale float64, opts ...resample.Option) (*image.NRGBA, error) {
	if err := resample.ValidateScale(scale); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.WithKind(resample.ErrInvalidSource, errors.NilParam())
	}
	src, err := raster.FromImage(img)
	if err != nil {
		return nil, errors.WithKind(resample.ErrInvalidSource, err)
	}
	dst, err := resample.Resample(src, scale, opts...)
	if err != nil {
		return nil, err
	}
	return dst.ToNRGBA(), nil
}

// FileConfig configures ResizeFile.
type FileConfig struct {
	// Engine names the resizing engine, see resize.Engines.
	// Empty selects resize.DefaultEngine.
	Engine      string
	Options     resample.Options
	JPEGQuality int
	Logger      *slog.Logger
}

// ResizeFile reads the image at srcPath, scales it by scale and writes it to
// dstPath in the format named by dstPath's extension (jpeg without one).
// The scale is validated before the input is opened.
func ResizeFile(srcPath, dstPath string, scale float64, cfg FileConfig) error {
	if err := resample.ValidateScale(scale); err != nil {
		return err
	}
	prov := logx.Prov(cfg.Logger)
	engine, err := resize.New(cfg.Engine, cfg.Options, resample.WithLogger(cfg.Logger))
	if err != nil {
		return err
	}

	img, format, err := codec.DecodeFile(srcPath, prov)
	if err != nil {
		return err
	}
	srcSize := img.Bounds().Size()
	logx.Info(`read image`, prov, `path`, srcPath, `format`, format, `size`, srcSize)

	w, h, err := resample.Dimensions(srcSize.X, srcSize.Y, scale)
	if err != nil {
		return err
	}
	dst, err := logx.TimeIt2(func() (image.Image, error) { return engine.Resize(img, image.Pt(w, h)) },
		`resampled`, prov, `engine`, cfg.Engine, `scale`, scale, `size`, srcSize)
	if err != nil {
		return err
	}

	n, err := codec.EncodeFile(dstPath, dst, &codec.MultiEncoder{JPEGQuality: cfg.JPEGQuality}, prov)
	if err != nil {
		return err
	}
	logx.Info(`wrote image`, prov, `path`, dstPath, `size`, dst.Bounds().Size(), `bytes`, humanize.Bytes(uint64(n)))
	return nil
}
