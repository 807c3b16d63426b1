// Package resample scales pixel buffers with bilinear interpolation.
//
// Every destination pixel is a blend of the four source pixels around its
// mapped position. The four channels are blended independently: two linear
// interpolations along x, one along y.
package resample

import (
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/raster"
)

// limits of a destination buffer
const (
	maxDimension = 1 << 24
	maxPixels    = 1 << 30
)

// Resampler holds the configuration of a resampling run.
// The zero value truncates, maps corners and runs one row band per CPU.
// A Resampler is not modified by resampling and may be used concurrently.
type Resampler struct {
	workers    int
	rounding   Rounding
	mapping    Mapping
	allowEmpty bool
	logger     *slog.Logger
}

var _ logx.LoggerProvider = (*Resampler)(nil)

// New returns a Resampler that works sequentially unless configured otherwise.
func New(opts ...Option) (*Resampler, error) {
	r := &Resampler{workers: 1}
	if err := r.SetOptions(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resampler) SetOptions(opts ...Option) error {
	if r == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(r); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func (r *Resampler) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.logger
}

// Resample scales src by scale with a Resampler configured by opts.
func Resample(src *raster.Buffer, scale float64, opts ...Option) (*raster.Buffer, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Resample(src, scale)
}

// ScaleTo scales src to dstWidth x dstHeight with a Resampler configured by opts.
func ScaleTo(src *raster.Buffer, dstWidth, dstHeight int, opts ...Option) (*raster.Buffer, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.ScaleTo(src, dstWidth, dstHeight)
}

// ValidateScale reports ErrInvalidScale unless scale is positive and finite.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return errors.Kind(ErrInvalidScale, `%v (must be a positive number)`, scale)
	}
	return nil
}

// Dimensions returns floor(width*scale) x floor(height*scale).
// The result may contain a 0 for small scales.
func Dimensions(width, height int, scale float64) (int, int, error) {
	if err := ValidateScale(scale); err != nil {
		return 0, 0, err
	}
	if width < 1 || height < 1 {
		return 0, 0, errors.Kind(ErrInvalidSource, `size %dx%d`, width, height)
	}
	w := math.Floor(float64(width) * scale)
	h := math.Floor(float64(height) * scale)
	if w > maxDimension || h > maxDimension || w*h > maxPixels {
		return 0, 0, errors.Kind(ErrInvalidScale, `%v makes %dx%d too large`, scale, width, height)
	}
	return int(w), int(h), nil
}

// Resample scales src by scale. The destination size is
// floor(src.Width()*scale) x floor(src.Height()*scale).
func (r *Resampler) Resample(src *raster.Buffer, scale float64) (*raster.Buffer, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	if err := ValidateScale(scale); err != nil {
		return nil, err
	}
	if err := checkSource(src); err != nil {
		return nil, err
	}
	w, h, err := Dimensions(src.Width(), src.Height(), scale)
	if err != nil {
		return nil, err
	}
	logx.Debug(`resample`, r, `src`, src.Size(), `scale`, scale, `dst`, [2]int{w, h})
	return r.ScaleTo(src, w, h)
}

// ScaleTo scales src to exactly dstWidth x dstHeight.
func (r *Resampler) ScaleTo(src *raster.Buffer, dstWidth, dstHeight int) (*raster.Buffer, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if dstWidth < 0 || dstHeight < 0 || dstWidth > maxDimension || dstHeight > maxDimension ||
		dstWidth*dstHeight > maxPixels {
		return nil, errors.Kind(ErrInvalidScale, `destination size %dx%d`, dstWidth, dstHeight)
	}
	if dstWidth == 0 || dstHeight == 0 {
		if !r.allowEmpty {
			return nil, errors.Kind(ErrDegenerateOutput, `%dx%d source gives %dx%d destination`,
				src.Width(), src.Height(), dstWidth, dstHeight)
		}
		logx.Debug(`empty destination`, r, `width`, dstWidth, `height`, dstHeight)
		return raster.New(dstWidth, dstHeight)
	}

	dst, err := raster.New(dstWidth, dstHeight)
	if err != nil {
		return nil, err
	}
	k := newKernel(src, dst, r.mapping, r.rounding)

	workers := r.workerCount(dstHeight)
	if workers <= 1 {
		k.rows(0, dstHeight)
		return dst, nil
	}

	// disjoint row bands, the source is only read
	band := (dstHeight + workers - 1) / workers
	var group errgroup.Group
	group.SetLimit(workers)
	for y0 := 0; y0 < dstHeight; y0 += band {
		y0, y1 := y0, min(y0+band, dstHeight)
		group.Go(func() error {
			k.rows(y0, y1)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	logx.Debug(`resampled in parallel`, r, `workers`, workers, `band`, band)
	return dst, nil
}

func (r *Resampler) workerCount(rows int) int {
	n := r.workers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, rows))
}

func checkSource(src *raster.Buffer) error {
	if src == nil {
		return errors.Kind(ErrInvalidSource, `nil buffer`)
	}
	if src.Empty() {
		return errors.Kind(ErrInvalidSource, `size %dx%d`, src.Width(), src.Height())
	}
	return nil
}
