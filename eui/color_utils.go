package eui

import (
	"image/color"

	"rangeseek/seekbar"
)

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

// ColorOf converts any color to the premultiplied form used for drawing.
func ColorOf(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	return Color(color.RGBAModel.Convert(c).(color.RGBA))
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 { return seekbar.ToARGB(c) }
