package eui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedThemesLoad(t *testing.T) {
	names := ThemeNames()
	require.GreaterOrEqual(t, len(names), 2, "dark and light palettes")
	for _, name := range names {
		th, err := LoadTheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, namedColors["holo-blue"], th.Progress, "%s: progress references the accent", name)
		assert.Positive(t, th.FontSize, name)
	}
}

func TestDefaultThemePicksPalette(t *testing.T) {
	assert.Equal(t, "dark", DefaultTheme(true).Name)
	assert.Equal(t, "light", DefaultTheme(false).Name)
}

func TestThemeOverrideFromDisk(t *testing.T) {
	old := ThemeDir
	ThemeDir = t.TempDir()
	defer func() { ThemeDir = old }()

	data := `{"Colors":{"background":"#000000","text":"fg","fg":"#FFFFFF","value":"fg","progress":"0,1,1","track":"silver"}}`
	require.NoError(t, os.WriteFile(filepath.Join(ThemeDir, "mine.json"), []byte(data), 0o644))

	th, err := LoadTheme("mine")
	require.NoError(t, err)
	assert.Equal(t, NewColor(0xff, 0xff, 0xff, 0xff), th.Text, "reference resolved")
	assert.Equal(t, NewColor(0xff, 0, 0, 0xff), th.Progress, "HSV color parsed")
	assert.Equal(t, float32(defaultFontSize), th.FontSize)
}

func TestThemeErrors(t *testing.T) {
	_, err := parseTheme("cycle", []byte(`{"Colors":{"background":"a","a":"b","b":"a","text":"#fff000","value":"#fff000","progress":"#fff000","track":"#fff000"}}`))
	assert.Error(t, err, "reference cycle")

	_, err = parseTheme("short", []byte(`{"Colors":{"background":"#000000"}}`))
	assert.Error(t, err, "missing colors")

	_, err = LoadTheme("does-not-exist")
	assert.Error(t, err)
}
