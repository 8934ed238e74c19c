package eui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadThumb decodes a thumb bitmap from disk. When size is positive the
// image is scaled to fit a size x size box keeping its aspect ratio.
func LoadThumb(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode thumb %s: %w", path, err)
	}
	if size <= 0 {
		return img, nil
	}
	return ScaleThumb(img, size), nil
}

// ScaleThumb resamples img to fit a size x size box.
func ScaleThumb(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || (w == size && h <= size) || (h == size && w <= size) {
		return img
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// LoadThumbPair loads the normal and pressed thumb images. An empty pressed
// path reuses the normal image, and empty paths yield nil so the engine's
// stock thumbs apply.
func LoadThumbPair(normal, pressed string, size int) (image.Image, image.Image, error) {
	var n, p image.Image
	var err error
	if normal != "" {
		if n, err = LoadThumb(normal, size); err != nil {
			return nil, nil, err
		}
	}
	if pressed != "" {
		if p, err = LoadThumb(pressed, size); err != nil {
			return nil, nil, err
		}
	} else {
		p = n
	}
	return n, p, nil
}
