package seekbar

import "image/color"

// ARGB builds an opaque-or-translucent color from 8-bit components, in the
// alpha-first order used by the configuration.
func ARGB(a, r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ColorFromARGB unpacks a 0xAARRGGBB value.
func ColorFromARGB(v uint32) color.NRGBA {
	return ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

// ToARGB packs c as 0xAARRGGBB (non-premultiplied).
func ToARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
