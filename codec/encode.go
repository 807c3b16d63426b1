package codec

import (
	"bufio"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sixel"
	"github.com/soniakeys/quant/median"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/bilerp/internal/consts"
	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/resample"
)

type Encoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

var _ Encoder = (*MultiEncoder)(nil)

// MultiEncoder writes bmp, gif, png, tiff, jpeg and sixel, chosen by file
// extension.
type MultiEncoder struct {
	// JPEGQuality in 1..100, 0 selects consts.DefaultJPEGQuality.
	JPEGQuality int
	// SixelDither enables Floyd-Steinberg dithering for sixel output.
	SixelDither bool
}

// Format normalizes a file extension or a whole file name to a format name.
func Format(fileExt string) string {
	// allow passing whole filename
	fileExtParts := strings.Split(fileExt, `.`)
	fileExt = fileExtParts[len(fileExtParts)-1]
	return strings.ToLower(strings.TrimSpace(fileExt))
}

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.NilParam()
	}
	fmtStr := Format(fileExt)
	if len(fmtStr) == 0 {
		return errors.New(`no file format specified`)
	}
	var err error
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		// median cut palette instead of the fixed web palette
		err = gif.Encode(w, img, &gif.Options{NumColors: 256, Quantizer: median.Quantizer(256)})
	case `png`:
		err = png.Encode(w, img)
	case `tif`, `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality()})
	case `six`, `sixel`:
		enc := sixel.NewEncoder(w)
		enc.Dither = e != nil && e.SixelDither
		err = enc.Encode(img)
	default:
		return errors.Kind(consts.ErrUnsupportedFormat, `%q`, fmtStr)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}

func (e *MultiEncoder) quality() int {
	if e == nil || e.JPEGQuality <= 0 {
		return consts.DefaultJPEGQuality
	}
	return min(e.JPEGQuality, 100)
}

// EncodeFile writes img to path in the format named by the path's extension,
// jpeg when it has none. It returns the number of bytes written.
// A partially written file is removed.
func EncodeFile(path string, img image.Image, enc Encoder, loggerProv logx.LoggerProvider) (n int64, err error) {
	if img == nil {
		return 0, errors.New(consts.ErrNilImage)
	}
	if img.Bounds().Empty() {
		return 0, errors.Kind(resample.ErrDegenerateOutput, `cannot write an image without pixels`)
	}
	if enc == nil {
		enc = &MultiEncoder{}
	}
	ext := filepath.Ext(path)
	if len(ext) == 0 {
		ext = consts.DefaultOutputFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errors.WrapPrefix(err, `unable to open output file `+path, 0)
	}
	defer func() {
		if err == nil {
			return
		}
		_ = f.Close()
		if errRm := os.Remove(path); errRm != nil {
			logx.Warn(`failed to remove partial output`, loggerProv, `path`, path, `err`, errRm)
		}
	}()

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}
	if err = enc.Encode(cw, img, ext); err != nil {
		return 0, err
	}
	if err = bw.Flush(); err != nil {
		return 0, errors.New(err)
	}
	if err = f.Close(); err != nil {
		return 0, errors.New(err)
	}
	logx.Debug(`encoded`, loggerProv, `path`, path, `format`, Format(ext), `bytes`, cw.n)
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
