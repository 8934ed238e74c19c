package eui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0xb5, B: 0xe5, A: 0xff})
		}
	}
	path := filepath.Join(t.TempDir(), "thumb.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadThumbScales(t *testing.T) {
	path := writePNG(t, 64, 32)
	img, err := LoadThumb(path, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	img, err = LoadThumb(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx(), "unscaled load keeps the size")
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestLoadThumbPairFallback(t *testing.T) {
	path := writePNG(t, 20, 20)
	n, p, err := LoadThumbPair(path, "", 0)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, n, p, "pressed thumb reuses the normal image")

	n, p, err = LoadThumbPair("", "", 0)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Nil(t, p)

	_, _, err = LoadThumbPair(filepath.Join(t.TempDir(), "missing.png"), "", 0)
	assert.Error(t, err)
}

func TestLoadThumbRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err := LoadThumb(path, 0)
	assert.Error(t, err)
}
