package eui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultFontSize = 14

var (
	faceSource *text.GoTextFaceSource
	faceCache  = map[float64]*text.GoTextFace{}
)

// SetFontSource sets the text face source used when rendering labels.
func SetFontSource(src *text.GoTextFaceSource) {
	faceSource = src
	faceCache = map[float64]*text.GoTextFace{}
}

// EnsureFontSource initializes the font source from ttf data if needed. Nil
// data selects Go Regular.
func EnsureFontSource(ttf []byte) error {
	if faceSource != nil {
		return nil
	}
	if ttf == nil {
		ttf = goregular.TTF
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return err
	}
	SetFontSource(s)
	return nil
}

func textFace(size float32) *text.GoTextFace {
	if faceSource == nil {
		if err := EnsureFontSource(nil); err != nil {
			return &text.GoTextFace{Size: float64(size)}
		}
	}
	s := float64(size)
	if f, ok := faceCache[s]; ok {
		return f
	}
	f := &text.GoTextFace{Source: faceSource, Size: s}
	faceCache[s] = f
	return f
}
