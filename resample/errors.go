package resample

import (
	"errors"
)

// Error kinds returned by this module. Match them with errors.Is.
var (
	// ErrInvalidScale: the scale factor is not a positive finite number,
	// could not be parsed, or gives a destination too large to allocate.
	ErrInvalidScale = errors.New(`invalid scale factor`)
	// ErrInvalidSource: the source is missing, unreadable or has a zero side.
	ErrInvalidSource = errors.New(`invalid source image`)
	// ErrDegenerateOutput: a destination side would be 0 pixels and
	// empty results were not enabled with WithEmptyResult.
	ErrDegenerateOutput = errors.New(`degenerate output size`)
)
