// Package codec reads and writes image files for the resampler.
package codec

import (
	"bufio"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // registers the decoder

	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/resample"
)

// sniffLen is the amount of data inspected to detect the input type.
const sniffLen = 3072

// Decode reads an image from r.
// Input that is not an image fails with resample.ErrInvalidSource before any
// decoding is attempted. JPEG EXIF orientation is applied.
// The returned string is the detected format, e.g. "png".
func Decode(r io.Reader, loggerProv logx.LoggerProvider) (image.Image, string, error) {
	if r == nil {
		return nil, ``, errors.WithKind(resample.ErrInvalidSource, errors.NilParam())
	}
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, ``, errors.WithKind(resample.ErrInvalidSource, err)
	}
	if len(head) == 0 {
		return nil, ``, errors.Kind(resample.ErrInvalidSource, `empty input`)
	}
	mtype := mimetype.Detect(head)
	if !strings.HasPrefix(mtype.String(), `image/`) {
		return nil, ``, errors.Kind(resample.ErrInvalidSource, `input is %s, not an image`, mtype.String())
	}
	format := strings.TrimPrefix(mtype.Extension(), `.`)
	logx.Debug(`decode`, loggerProv, `mime`, mtype.String())

	img, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return nil, ``, errors.WithKind(resample.ErrInvalidSource, err)
	}
	if img.Bounds().Empty() {
		return nil, ``, errors.Kind(resample.ErrInvalidSource, `image has no pixels`)
	}
	logx.Debug(`decoded`, loggerProv, `format`, format, `size`, img.Bounds().Size())
	return img, format, nil
}

// DecodeFile opens and decodes the image file at path.
func DecodeFile(path string, loggerProv logx.LoggerProvider) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ``, errors.WithKind(resample.ErrInvalidSource, err)
	}
	defer f.Close()
	img, format, err := Decode(f, loggerProv)
	if err != nil {
		return nil, ``, errors.WrapPrefix(err, `unable to read input file `+path, 0)
	}
	return img, format, nil
}
