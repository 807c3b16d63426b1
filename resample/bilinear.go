package resample

import (
	"math"

	"github.com/srlehn/bilerp/raster"
)

// axis holds the source sampling positions for every destination index
// along one dimension: the two neighbor indices and the weight of the upper one.
type axis struct {
	lo []int
	hi []int
	t  []float64
}

func newAxis(srcLen, dstLen int, m Mapping) axis {
	a := axis{
		lo: make([]int, dstLen),
		hi: make([]int, dstLen),
		t:  make([]float64, dstLen),
	}
	last := srcLen - 1
	for i := 0; i < dstLen; i++ {
		pos := sourcePos(i, srcLen, dstLen, m)
		lo := int(pos) // pos >= 0, truncation is floor
		if lo > last {
			lo = last
		}
		// the upper neighbor of the last column/row is the column/row itself
		hi := lo + 1
		if hi > last {
			hi = last
		}
		a.lo[i] = lo
		a.hi[i] = hi
		a.t[i] = pos - float64(lo)
	}
	return a
}

// sourcePos maps destination index i to a real source position in [0, srcLen-1].
func sourcePos(i, srcLen, dstLen int, m Mapping) float64 {
	switch m {
	case MapReference:
		return float64(i) / float64(dstLen) * float64(srcLen-1)
	default:
		if dstLen == 1 {
			return 0
		}
		// integer product first: exact for i == dstLen-1 and for identity sizes
		return float64(i*(srcLen-1)) / float64(dstLen-1)
	}
}

type kernel struct {
	src      *raster.Buffer
	dst      *raster.Buffer
	xs, ys   axis
	rounding Rounding
}

func newKernel(src, dst *raster.Buffer, m Mapping, rd Rounding) *kernel {
	return &kernel{
		src:      src,
		dst:      dst,
		xs:       newAxis(src.Width(), dst.Width(), m),
		ys:       newAxis(src.Height(), dst.Height(), m),
		rounding: rd,
	}
}

// rows fills the destination rows [y0, y1).
func (k *kernel) rows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		top := k.src.Row(k.ys.lo[y])
		bottom := k.src.Row(k.ys.hi[y])
		yt := k.ys.t[y]
		out := k.dst.Row(y)
		for x := range out {
			xl, xh := k.xs.lo[x], k.xs.hi[x]
			out[x] = blend(top[xl], top[xh], bottom[xl], bottom[xh], k.xs.t[x], yt, k.rounding)
		}
	}
}

// blend interpolates the four neighbors p00 (top left), p10 (top right),
// p01 (bottom left) and p11 (bottom right) channel by channel.
func blend(p00, p10, p01, p11 raster.Pixel, xt, yt float64, rd Rounding) raster.Pixel {
	var p raster.Pixel
	for c := range p {
		rowTop := lerp(float64(p00[c]), float64(p10[c]), xt)
		rowBottom := lerp(float64(p01[c]), float64(p11[c]), xt)
		p[c] = channel(lerp(rowTop, rowBottom, yt), rd)
	}
	return p
}

func lerp(a, b, t float64) float64 { return (1-t)*a + t*b }

func channel(v float64, rd Rounding) uint8 {
	if rd == RoundNearest {
		v = math.Round(v)
	}
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
