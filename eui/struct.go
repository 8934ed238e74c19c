package eui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"rangeseek/seekbar"
)

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

// RangeBar hosts a seekbar engine at a position on screen together with a
// caption and a formatted readout of the selection.
type RangeBar struct {
	Label  string
	Format func(v float32) string

	bar     *seekbar.Bar
	handler *EventHandler
	panel   *Panel

	// Rect is the full widget area; track is the engine's area inside it.
	Rect  rect
	track rect

	images map[any]*ebiten.Image
}

// Panel lays range bars out vertically and routes pointer input to them.
type Panel struct {
	Position point
	Width    float32
	Theme    *Theme

	bars     []*RangeBar
	captured *RangeBar
	tracker  pointerTracker
	logger   *zap.SugaredLogger

	// canvas caches the last painted frame; stale forces a repaint after
	// layout or theme changes the bars do not see.
	canvas *ebiten.Image
	stale  bool
}

// Theme holds the palette and spacing used to draw a panel.
type Theme struct {
	Name       string
	Background Color
	Text       Color
	Value      Color
	Progress   Color
	Track      Color
	FontSize   float32
	Spacing    float32
	LabelGap   float32
}

type roundRect struct {
	Size, Position point
	Fillet         float32
	Color          Color
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

type point struct {
	X, Y float32
}
