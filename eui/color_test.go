package eui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorForms(t *testing.T) {
	tests := map[string]Color{
		"#33B5E5":    NewColor(0x33, 0xb5, 0xe5, 0xff),
		"#FFC0C0C0":  NewColor(0xc0, 0xc0, 0xc0, 0xff),
		"0xff000000": NewColor(0, 0, 0, 0xff),
		"holo-blue":  NewColor(0x33, 0xb5, 0xe5, 0xff),
		"0,1,1":      NewColor(0xff, 0, 0, 0xff),
		" Silver ":   NewColor(0xc0, 0xc0, 0xc0, 0xff),
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestHSVColor(t *testing.T) {
	tests := []struct {
		name       string
		h, s, v, a float64
		want       Color
	}{
		{"red", 0, 1, 1, 1, NewColor(0xff, 0, 0, 0xff)},
		{"green", 120, 1, 1, 1, NewColor(0, 0xff, 0, 0xff)},
		{"blue", 240, 1, 1, 1, NewColor(0, 0, 0xff, 0xff)},
		{"yellow", 60, 1, 1, 1, NewColor(0xff, 0xff, 0, 0xff)},
		{"magenta", 300, 1, 1, 1, NewColor(0xff, 0, 0xff, 0xff)},
		{"gray truncates", 0, 0, 0.5, 1, NewColor(0x7f, 0x7f, 0x7f, 0xff)},
		{"hue wraps", -120, 1, 1, 1, NewColor(0, 0, 0xff, 0xff)},
		{"hue wraps past 360", 480, 1, 1, 1, NewColor(0, 0xff, 0, 0xff)},
		{"out of range clamps", 0, 2, 3, -1, NewColor(0xff, 0, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hsvColor(tc.h, tc.s, tc.v, tc.a))
		})
	}
}

func TestParseColorAlphaFirst(t *testing.T) {
	c, err := ParseColor("#00FFFFFF")
	require.NoError(t, err)
	assert.Zero(t, c.A, "alpha comes first")
	assert.Zero(t, c.ARGB(), "transparent color packs to zero")
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGGGGG", "blue-ish", "1,x,3"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestColorJSON(t *testing.T) {
	var cfg struct {
		A Color
		B Color
		C Color
	}
	data := `{"A":"#FF33B5E5","B":{"R":1,"G":2,"B":3,"A":4},"C":{"HSV":[240,1,1,1]}}`
	require.NoError(t, json.Unmarshal([]byte(data), &cfg))
	assert.Equal(t, uint32(0xFF33B5E5), cfg.A.ARGB())
	assert.Equal(t, NewColor(1, 2, 3, 4), cfg.B)
	assert.Equal(t, NewColor(0, 0, 0xff, 0xff), cfg.C)

	var bad Color
	assert.Error(t, json.Unmarshal([]byte(`"not a color"`), &bad))
}
