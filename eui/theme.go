package eui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed themes/palettes/*.json
var embeddedThemes embed.FS

// ThemeDir is checked for palette overrides before the embedded copies.
var ThemeDir = filepath.Join("themes", "palettes")

type themeFile struct {
	Comment  string            `json:"Comment"`
	Colors   map[string]string `json:"Colors"`
	FontSize float32           `json:"FontSize"`
	Spacing  float32           `json:"Spacing"`
	LabelGap float32           `json:"LabelGap"`
}

// resolveColor resolves a color string, following references to other named
// colors from the same file.
func resolveColor(s string, colors map[string]string, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if val, ok := colors[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("color reference cycle for %s", key)
		}
		seen[key] = true
		return resolveColor(val, colors, seen)
	}
	var c Color
	if err := c.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return Color{}, err
	}
	return c, nil
}

// LoadTheme reads a palette by name, preferring a file in ThemeDir over the
// embedded copy.
func LoadTheme(name string) (*Theme, error) {
	data, err := os.ReadFile(filepath.Join(ThemeDir, name+".json"))
	if err != nil {
		// embed paths must use forward slashes
		data, err = embeddedThemes.ReadFile(path.Join("themes", "palettes", name+".json"))
		if err != nil {
			return nil, err
		}
	}
	return parseTheme(name, data)
}

func parseTheme(name string, data []byte) (*Theme, error) {
	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	colors := make(map[string]string, len(tf.Colors))
	for k, v := range tf.Colors {
		colors[strings.ToLower(k)] = v
	}
	th := &Theme{Name: name, FontSize: tf.FontSize, Spacing: tf.Spacing, LabelGap: tf.LabelGap}
	fields := []struct {
		key string
		dst *Color
	}{
		{"background", &th.Background},
		{"text", &th.Text},
		{"value", &th.Value},
		{"progress", &th.Progress},
		{"track", &th.Track},
	}
	for _, f := range fields {
		raw, ok := colors[f.key]
		if !ok {
			return nil, fmt.Errorf("theme %s: missing color %q", name, f.key)
		}
		c, err := resolveColor(raw, colors, map[string]bool{f.key: true})
		if err != nil {
			return nil, fmt.Errorf("theme %s: %s: %w", name, f.key, err)
		}
		*f.dst = c
	}
	if th.FontSize <= 0 {
		th.FontSize = defaultFontSize
	}
	return th, nil
}

// ThemeNames lists the embedded palettes.
func ThemeNames() []string {
	entries, err := fs.ReadDir(embeddedThemes, "themes/palettes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names
}

// DefaultTheme picks the dark or light palette, falling back to the built in
// light colors when the embedded files are unreadable.
func DefaultTheme(dark bool) *Theme {
	name := "light"
	if dark {
		name = "dark"
	}
	if th, err := LoadTheme(name); err == nil {
		return th
	}
	return &Theme{
		Name:       "fallback",
		Background: NewColor(0xfa, 0xfa, 0xfa, 0xff),
		Text:       NewColor(0x20, 0x21, 0x24, 0xff),
		Value:      namedColors["holo-blue"],
		Progress:   namedColors["holo-blue"],
		Track:      namedColors["silver"],
		FontSize:   defaultFontSize,
		Spacing:    18,
		LabelGap:   6,
	}
}
