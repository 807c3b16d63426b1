package consts

import (
	"errors"
)

var (
	ErrNilReceiver       = errors.New(`nil receiver`)
	ErrNilParam          = errors.New(`nil parameter`)
	ErrNilImage          = errors.New(`nil image`)
	ErrUnsupportedFormat = errors.New(`unsupported file format`)
)

const (
	LibraryName = `bilerp`

	// DefaultJPEGQuality is used when no quality is configured.
	DefaultJPEGQuality = 90
	// DefaultOutputFormat is used for output paths without a file extension.
	DefaultOutputFormat = `jpg`
)
