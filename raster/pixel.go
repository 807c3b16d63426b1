package raster

import (
	"image/color"
)

// Channels is the number of channels of a Pixel.
const Channels = 4

// Pixel holds the channels of a non-premultiplied color in R, G, B, A order.
// Channels are independent lanes; nothing in this module mixes them.
type Pixel [Channels]uint8

// PixelFromColor converts c to a non-premultiplied Pixel.
func PixelFromColor(c color.Color) Pixel {
	if c == nil {
		return Pixel{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B, n.A}
}

func (p Pixel) NRGBA() color.NRGBA { return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]} }

// PackARGB packs p into a 32 bit word with alpha in the highest byte (0xAARRGGBB).
func PackARGB(p Pixel) uint32 {
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// UnpackARGB is the inverse of PackARGB.
func UnpackARGB(argb uint32) Pixel {
	return Pixel{uint8(argb >> 16), uint8(argb >> 8), uint8(argb), uint8(argb >> 24)}
}
