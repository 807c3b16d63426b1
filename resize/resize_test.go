package resize_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/bilerp/resample"
	"github.com/srlehn/bilerp/resize"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestEngines(t *testing.T) {
	names := resize.Engines()
	require.NotEmpty(t, names)
	assert.Equal(t, resize.DefaultEngine, names[0])
	assert.Contains(t, names, `xdraw`)
	assert.Contains(t, names, `rez`)
}

func TestEnginesResize(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 40, A: 255}
	src := uniform(6, 4, c)
	size := image.Pt(9, 6)
	for _, name := range resize.Engines() {
		t.Run(name, func(t *testing.T) {
			engine, err := resize.New(name)
			require.NoError(t, err)
			dst, err := engine.Resize(src, size)
			require.NoError(t, err)
			require.Equal(t, size, dst.Bounds().Size())

			// a blend of equal colors is that color
			b := dst.Bounds()
			for _, p := range []image.Point{b.Min, {b.Max.X - 1, b.Max.Y - 1}, {b.Min.X + 4, b.Min.Y + 3}} {
				got := color.NRGBAModel.Convert(dst.At(p.X, p.Y)).(color.NRGBA)
				assert.InDelta(t, c.R, got.R, 1, `%s at %v`, name, p)
				assert.InDelta(t, c.G, got.G, 1, `%s at %v`, name, p)
				assert.InDelta(t, c.B, got.B, 1, `%s at %v`, name, p)
				assert.Equal(t, c.A, got.A, `%s at %v`, name, p)
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	engine, err := resize.New(``, resample.WithRounding(resample.RoundNearest))
	require.NoError(t, err)
	assert.IsType(t, &resample.Resampler{}, engine)

	engine, err = resize.New(` BILERP `)
	require.NoError(t, err)
	assert.IsType(t, &resample.Resampler{}, engine)

	_, err = resize.New(``, resample.WithWorkers(-1))
	assert.Error(t, err)
}

func TestNewUnknown(t *testing.T) {
	_, err := resize.New(`bicubic`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown engine "bicubic"`)
}

func TestEngineInputChecks(t *testing.T) {
	engine, err := resize.New(`gift`)
	require.NoError(t, err)

	_, err = engine.Resize(nil, image.Pt(2, 2))
	assert.ErrorIs(t, err, resample.ErrInvalidSource)
	_, err = engine.Resize(image.NewNRGBA(image.Rect(0, 0, 0, 3)), image.Pt(2, 2))
	assert.ErrorIs(t, err, resample.ErrInvalidSource)
	_, err = engine.Resize(uniform(2, 2, color.NRGBA{A: 255}), image.Pt(0, 2))
	assert.ErrorIs(t, err, resample.ErrDegenerateOutput)
}

func TestRezPaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	for i := range src.Pix {
		src.Pix[i] = 1
	}
	engine, err := resize.New(`rez`)
	require.NoError(t, err)
	dst, err := engine.Resize(src, image.Pt(8, 8))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 8), dst.Bounds().Size())
	got := color.NRGBAModel.Convert(dst.At(4, 4)).(color.NRGBA)
	assert.InDelta(t, 255, got.R, 1)
}
