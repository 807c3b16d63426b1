package bilerp_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/bilerp"
	"github.com/srlehn/bilerp/codec"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/resample"
)

func testImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 200), B: 50, A: 255})
		}
	}
	return m
}

func TestResize(t *testing.T) {
	src := testImage()
	dst, err := bilerp.Resize(src, 2, resample.WithWorkers(0))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), dst.Bounds())
	assert.Equal(t, src.NRGBAAt(0, 0), dst.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(3, 1), dst.NRGBAAt(7, 3))

	_, err = bilerp.Resize(src, 0)
	assert.ErrorIs(t, err, resample.ErrInvalidScale)
	_, err = bilerp.Resize(nil, 2)
	assert.ErrorIs(t, err, resample.ErrInvalidSource)
}

func TestResizeFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, `in.png`)
	_, err := codec.EncodeFile(srcPath, testImage(), nil, nil)
	require.NoError(t, err)

	var logBuf bytes.Buffer
	logger, err := logx.NewLogger(&logBuf, `info`)
	require.NoError(t, err)

	dstPath := filepath.Join(dir, `out.png`)
	err = bilerp.ResizeFile(srcPath, dstPath, 1.5, bilerp.FileConfig{
		Options: resample.Options{resample.WithWorkers(2)},
		Logger:  logger,
	})
	require.NoError(t, err)

	img, format, err := codec.DecodeFile(dstPath, nil)
	require.NoError(t, err)
	assert.Equal(t, `png`, format)
	assert.Equal(t, image.Pt(6, 3), img.Bounds().Size())
	assert.Contains(t, logBuf.String(), `wrote image`)
}

func TestResizeFileErrors(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, `in.png`)
	_, err := codec.EncodeFile(srcPath, testImage(), nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		src   string
		scale float64
		want  error
	}{
		{`invalid scale before missing input`, filepath.Join(dir, `missing.png`), -1, resample.ErrInvalidScale},
		{`missing input`, filepath.Join(dir, `missing.png`), 2, resample.ErrInvalidSource},
		{`degenerate`, srcPath, 0.4, resample.ErrDegenerateOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dstPath := filepath.Join(dir, `out.png`)
			err := bilerp.ResizeFile(tt.src, dstPath, tt.scale, bilerp.FileConfig{})
			assert.ErrorIs(t, err, tt.want)
			_, errStat := os.Stat(dstPath)
			assert.True(t, os.IsNotExist(errStat))
		})
	}
}
