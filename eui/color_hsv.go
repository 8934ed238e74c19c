package eui

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"rangeseek/seekbar"
)

// hsvColor builds a color from hue in degrees and saturation, value and
// alpha in [0,1]. Out of range components are clamped; hue wraps.
func hsvColor(h, s, v, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v = clampUnit(s), clampUnit(v)
	if s == 0 {
		return NewColor(unitByte(v), unitByte(v), unitByte(v), unitByte(a))
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return NewColor(unitByte(r), unitByte(g), unitByte(b), unitByte(a))
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// unitByte scales a [0,1] component to a byte, truncating.
func unitByte(x float64) uint8 {
	return uint8(clampUnit(x) * 255)
}

// namedColors covers the stock palette of the range bar.
var namedColors = map[string]Color{
	"holo-blue": NewColor(0x33, 0xb5, 0xe5, 0xff),
	"silver":    NewColor(0xc0, 0xc0, 0xc0, 0xff),
	"black":     NewColor(0, 0, 0, 0xff),
	"white":     NewColor(0xff, 0xff, 0xff, 0xff),
}

// ParseColor reads a color from configuration text. Accepted forms are a
// palette name, "#RRGGBB", alpha-first "#AARRGGBB" or "0xAARRGGBB", and
// comma-separated HSV components "h,s,v[,a]".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if nc, ok := namedColors[strings.ToLower(s)]; ok {
		return nc, nil
	}
	hex := ""
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	}
	if hex != "" {
		if len(hex) != 6 && len(hex) != 8 {
			return Color{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
		}
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if len(hex) == 6 {
			val |= 0xff000000
		}
		return ColorOf(seekbar.ColorFromARGB(uint32(val))), nil
	}
	if parts := strings.Split(s, ","); len(parts) >= 3 {
		comp := make([]float64, 4)
		comp[3] = 1
		for i := 0; i < len(parts) && i < 4; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			comp[i] = v
		}
		return hsvColor(comp[0], comp[1], comp[2], comp[3]), nil
	}
	return Color{}, fmt.Errorf("invalid color format: %q", s)
}

// UnmarshalJSON accepts HSV, RGBA objects or any string ParseColor reads.
func (c *Color) UnmarshalJSON(data []byte) error {
	var hstruct struct {
		HSV [4]float64 `json:"HSV"`
	}
	if err := json.Unmarshal(data, &hstruct); err == nil && hstruct.HSV != [4]float64{} {
		*c = hsvColor(hstruct.HSV[0], hstruct.HSV[1], hstruct.HSV[2], hstruct.HSV[3])
		return nil
	}
	var rgba struct{ R, G, B, A uint8 }
	if err := json.Unmarshal(data, &rgba); err == nil {
		*c = NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid color format: %s", string(data))
	}
	nc, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}
