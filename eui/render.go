package eui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rangeseek/seekbar"
)

// imageSurface draws engine primitives onto an ebiten image, offset by the
// origin of the widget that owns the engine.
type imageSurface struct {
	dst    *ebiten.Image
	origin point
	images map[any]*ebiten.Image
}

var _ seekbar.Surface = (*imageSurface)(nil)

func (s *imageSurface) FillRoundRect(r seekbar.Rect, radius float32, c color.Color) {
	drawRoundRect(s.dst, &roundRect{
		Position: point{X: s.origin.X + r.X0, Y: s.origin.Y + r.Y0},
		Size:     point{X: r.Width(), Y: r.Height()},
		Fillet:   radius,
		Color:    ColorOf(c),
	})
}

func (s *imageSurface) FillCircle(cx, cy, radius float32, c color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, s.origin.X+cx, s.origin.Y+cy, radius, c, true)
}

func (s *imageSurface) DrawImage(img image.Image, x, y float32) {
	eimg := s.ebitenImage(img)
	if eimg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(float64(s.origin.X+x), float64(s.origin.Y+y))
	s.dst.DrawImage(eimg, op)
}

// ebitenImage uploads a thumb bitmap once and reuses the texture on later
// frames.
func (s *imageSurface) ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	if s.images != nil {
		s.images[img] = e
	}
	return e
}

func drawRoundRect(screen *ebiten.Image, rrect *roundRect) {
	drawColor := color.RGBA(rrect.Color)
	if rrect.Fillet <= 0 {
		drawFilledRect(screen, rrect.Position.X, rrect.Position.Y, rrect.Size.X, rrect.Size.Y, drawColor, true)
		return
	}

	x, y := rrect.Position.X, rrect.Position.Y
	w, h := rrect.Size.X, rrect.Size.Y
	if w <= 0 || h <= 0 {
		return
	}
	fillet := rrect.Fillet
	if fillet*2 > w {
		fillet = w / 2
	}
	if fillet*2 > h {
		fillet = h / 2
	}

	var path vector.Path
	path.MoveTo(x+fillet, y)
	path.LineTo(x+w-fillet, y)
	path.QuadTo(x+w, y, x+w, y+fillet)
	path.LineTo(x+w, y+h-fillet)
	path.QuadTo(x+w, y+h, x+w-fillet, y+h)
	path.LineTo(x+fillet, y+h)
	path.QuadTo(x, y+h, x, y+h-fillet)
	path.LineTo(x, y+fillet)
	path.QuadTo(x, y, x+fillet, y)
	path.Close()

	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(drawColor)
	vector.FillPath(screen, &path, nil, drawOp)
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h float32, col color.Color, aa bool) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	vector.DrawFilledRect(dst, x, y, w, h, col, aa)
}

func drawText(dst *ebiten.Image, s string, size float32, x, y float32, col Color, align text.Align) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align
	text.Draw(dst, s, textFace(size), op)
}

func textHeight(size float32) float32 {
	m := textFace(size).Metrics()
	return float32(math.Ceil(m.HAscent + m.HDescent))
}
