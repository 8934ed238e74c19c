package seekbar

import (
	"image"
	"image/color"
	"math"
)

// Rect is an axis aligned rectangle in widget-local pixels.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

func (r Rect) Width() float32  { return r.X1 - r.X0 }
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

// Surface receives the draw calls of a Bar. Coordinates are widget-local.
type Surface interface {
	FillRoundRect(r Rect, radius float32, c color.Color)
	FillCircle(cx, cy, radius float32, c color.Color)
	DrawImage(img image.Image, x, y float32)
}

// Measure returns the preferred size of the bar. A proposed dimension <= 0 is
// unspecified; a positive proposed height is an upper bound.
func (b *Bar) Measure(proposedWidth, proposedHeight float32) (width, height float32) {
	width = defaultMeasureWidth
	if proposedWidth > 0 {
		width = proposedWidth
	}
	thumbH := float32(max(b.thumbImage.Bounds().Dy(), b.thumbPressedImage.Bounds().Dy()))
	height = max(thumbH, max(b.progressLineHeight, b.backgroundLineHeight))
	if b.stepsEnabled {
		height = max(height, float32(math.Ceil(float64(2*b.stepRadius))))
	}
	if proposedHeight > 0 {
		height = min(height, proposedHeight)
	}
	return width, height
}

// Draw paints the track, the selected segment, the step markers and both
// thumbs onto s using the current size set by SetSize.
func (b *Bar) Draw(s Surface) {
	var corners float32
	if b.rounded {
		corners = 0.5 * max(b.backgroundLineHeight, b.progressLineHeight)
	}
	minX := b.normalizedToScreen(b.normMin)
	maxX := b.normalizedToScreen(b.normMax)
	midY := 0.5 * b.height

	bg := Rect{
		X0: b.padding,
		Y0: 0.5 * (b.height - b.backgroundLineHeight),
		X1: b.width - b.padding,
		Y1: 0.5 * (b.height + b.backgroundLineHeight),
	}
	s.FillRoundRect(bg, corners, b.backgroundColor)

	progress := Rect{
		X0: minX,
		Y0: 0.5 * (b.height - b.progressLineHeight),
		X1: maxX,
		Y1: 0.5 * (b.height + b.progressLineHeight),
	}
	s.FillRoundRect(progress, corners, b.progressColor)

	if b.stepsEnabled {
		for _, step := range b.steps {
			stepX := b.normalizedToScreen(step)
			c := b.progressColor
			if stepX > maxX || stepX < minX {
				c = b.backgroundColor
			}
			s.FillCircle(stepX, midY, b.stepRadius, c)
		}
	}

	b.drawThumb(s, minX, b.session.pressed == ThumbMin)
	b.drawThumb(s, maxX, b.session.pressed == ThumbMax)
}

func (b *Bar) drawThumb(s Surface, x float32, pressed bool) {
	img, halfW, halfH := b.thumbImage, b.thumbHalfWidth, b.thumbHalfHeight
	if pressed {
		img, halfW, halfH = b.thumbPressedImage, b.thumbPressedHalfWidth, b.thumbPressedHalfHeight
	}
	s.DrawImage(img, x-halfW, 0.5*b.height-halfH)
}

func (b *Bar) SetRounded(rounded bool) {
	b.rounded = rounded
	b.markDirty()
}

func (b *Bar) Rounded() bool { return b.rounded }

// SetProgressHeight sets the selected segment height in pixels.
func (b *Bar) SetProgressHeight(px float32) {
	b.progressLineHeight = px
	b.requestLayout()
}

// SetBackgroundHeight sets the track height in pixels.
func (b *Bar) SetBackgroundHeight(px float32) {
	b.backgroundLineHeight = px
	b.requestLayout()
}

func (b *Bar) SetProgressColor(c color.Color) {
	if c == nil {
		c = DefaultProgressColor
	}
	b.progressColor = c
	b.markDirty()
}

func (b *Bar) SetBackgroundColor(c color.Color) {
	if c == nil {
		c = DefaultBackgroundColor
	}
	b.backgroundColor = c
	b.markDirty()
}

func (b *Bar) ProgressColor() color.Color   { return b.progressColor }
func (b *Bar) BackgroundColor() color.Color { return b.backgroundColor }

// SetThumbImages uses img for both the normal and the pressed thumb.
func (b *Bar) SetThumbImages(img image.Image) {
	if img == nil {
		return
	}
	b.thumbImage, b.thumbPressedImage = img, img
	b.measureThumb()
	b.measureThumbPressed()
	b.updatePadding()
	b.requestLayout()
}

func (b *Bar) SetThumbNormalImage(img image.Image) {
	if img == nil {
		return
	}
	b.thumbImage = img
	b.measureThumb()
	b.updatePadding()
	b.requestLayout()
}

func (b *Bar) SetThumbPressedImage(img image.Image) {
	if img == nil {
		return
	}
	b.thumbPressedImage = img
	b.measureThumbPressed()
	b.updatePadding()
	b.requestLayout()
}

func (b *Bar) measureThumb() {
	r := b.thumbImage.Bounds()
	b.thumbHalfWidth = 0.5 * float32(r.Dx())
	b.thumbHalfHeight = 0.5 * float32(r.Dy())
}

func (b *Bar) measureThumbPressed() {
	r := b.thumbPressedImage.Bounds()
	b.thumbPressedHalfWidth = 0.5 * float32(r.Dx())
	b.thumbPressedHalfHeight = 0.5 * float32(r.Dy())
}

func (b *Bar) updatePadding() {
	w := max(b.thumbHalfWidth, b.thumbPressedHalfWidth)
	h := max(b.thumbHalfHeight, b.thumbPressedHalfHeight)
	b.padding = max(max(w, h), b.stepRadius)
}

// DefaultThumb renders the stock thumb: a filled disc, drawn larger and with
// a translucent halo when pressed.
func DefaultThumb(pressed bool) image.Image {
	const size = 30
	rgba := color.RGBA{R: 0x33, G: 0xB5, B: 0xE5, A: 0xFF}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	core := c * 0.6
	halo := c
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			switch {
			case d <= core:
				img.SetRGBA(x, y, rgba)
			case pressed && d <= halo:
				img.SetRGBA(x, y, color.RGBA{R: 0x14, G: 0x48, B: 0x5B, A: 0x66})
			}
		}
	}
	return img
}
