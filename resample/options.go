package resample

import (
	"log/slog"
	"strings"

	"github.com/srlehn/bilerp/internal/errors"
)

// Rounding selects how a blended channel value becomes an integer.
type Rounding int

const (
	// Truncate drops the fraction.
	Truncate Rounding = iota
	// RoundNearest rounds half away from zero.
	RoundNearest
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return `truncate`
	case RoundNearest:
		return `nearest`
	}
	return `unknown`
}

func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `truncate`, `trunc`, ``:
		return Truncate, nil
	case `nearest`, `round`:
		return RoundNearest, nil
	}
	return Truncate, errors.Errorf(`unknown rounding mode %q`, s)
}

// Mapping selects how destination coordinates map onto source coordinates.
// Both map destination (0,0) onto source (0,0).
type Mapping int

const (
	// MapCorners maps the last destination column/row exactly onto the last
	// source column/row: x * (srcWidth-1) / (dstWidth-1).
	MapCorners Mapping = iota
	// MapReference computes x / dstWidth * (srcWidth-1).
	// The last destination column lands short of the last source column.
	MapReference
)

func (m Mapping) String() string {
	switch m {
	case MapCorners:
		return `corners`
	case MapReference:
		return `reference`
	}
	return `unknown`
}

func ParseMapping(s string) (Mapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `corners`, ``:
		return MapCorners, nil
	case `reference`:
		return MapReference, nil
	}
	return MapCorners, errors.Errorf(`unknown coordinate mapping %q`, s)
}

type Option interface {
	ApplyOption(r *Resampler) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Resampler) error

func (o OptFunc) ApplyOption(r *Resampler) error { return o(r) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(r *Resampler) error { return r.SetOptions([]Option(o)...) }

// WithWorkers sets the number of row bands computed concurrently.
// 1 runs sequentially, 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return OptFunc(func(r *Resampler) error {
		if n < 0 {
			return errors.Errorf(`negative worker count %d`, n)
		}
		r.workers = n
		return nil
	})
}

func WithRounding(rd Rounding) Option {
	return OptFunc(func(r *Resampler) error {
		switch rd {
		case Truncate, RoundNearest:
		default:
			return errors.Errorf(`unknown rounding mode %d`, int(rd))
		}
		r.rounding = rd
		return nil
	})
}

func WithMapping(m Mapping) Option {
	return OptFunc(func(r *Resampler) error {
		switch m {
		case MapCorners, MapReference:
		default:
			return errors.Errorf(`unknown coordinate mapping %d`, int(m))
		}
		r.mapping = m
		return nil
	})
}

// WithEmptyResult makes a zero-sized destination a valid, empty result
// instead of ErrDegenerateOutput.
func WithEmptyResult() Option {
	return OptFunc(func(r *Resampler) error { r.allowEmpty = true; return nil })
}

// WithLogger sets the logger for debug output. nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return OptFunc(func(r *Resampler) error { r.logger = logger; return nil })
}
