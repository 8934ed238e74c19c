package eui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"rangeseek/seekbar"
)

// NewPanel creates an empty panel at x,y. A nil theme selects the light
// palette and a nil logger discards output.
func NewPanel(x, y, width float32, th *Theme, logger *zap.SugaredLogger) *Panel {
	if th == nil {
		th = DefaultTheme(false)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Panel{
		Position: point{X: x, Y: y},
		Width:    width,
		Theme:    th,
		logger:   logger.Named("panel"),
	}
}

// Add appends a bar below the existing ones.
func (p *Panel) Add(rb *RangeBar) {
	rb.panel = p
	if rb.handler.Logger == nil {
		rb.handler.Logger = p.logger.With("bar", rb.Label)
	}
	p.bars = append(p.bars, rb)
	p.layout()
}

// Bars returns the bars in display order.
func (p *Panel) Bars() []*RangeBar { return p.bars }

// SetTheme swaps the palette and re-lays out the bars.
func (p *Panel) SetTheme(th *Theme) {
	if th == nil {
		return
	}
	p.Theme = th
	p.layout()
}

// SetWidth resizes the panel horizontally.
func (p *Panel) SetWidth(width float32) {
	if width == p.Width {
		return
	}
	p.Width = width
	p.layout()
}

// Height is the space taken by the bars and their spacing.
func (p *Panel) Height() float32 {
	if len(p.bars) == 0 {
		return 0
	}
	return p.bars[len(p.bars)-1].Rect.Y1 + p.Theme.Spacing - p.Position.Y
}

func (p *Panel) layout() {
	p.stale = true
	y := p.Position.Y + p.Theme.Spacing
	for _, rb := range p.bars {
		y += rb.layout(p.Position.X, y, p.Width, p.Theme) + p.Theme.Spacing
	}
}

// Update polls ebiten for pointer input, delivers it to the bars and
// advances running animations.
func (p *Panel) Update(now time.Time) {
	var events []seekbar.MotionEvent
	if ebiten.IsFocused() {
		events = p.tracker.update(samplePointers())
	} else {
		events = p.tracker.cancel()
	}
	p.Dispatch(events)
	p.Tick(now)
}

// Tick advances animations and re-lays out bars whose geometry changed.
func (p *Panel) Tick(now time.Time) {
	relayout := false
	for _, rb := range p.bars {
		rb.bar.Tick(now)
		if rb.bar.LayoutDirty() {
			relayout = true
		}
	}
	if relayout {
		p.layout()
	}
}

// Dispatch routes screen space motion events. A gesture starts on the bar
// under the first pointer and stays with it until the last pointer lifts.
func (p *Panel) Dispatch(events []seekbar.MotionEvent) {
	for _, ev := range events {
		if ev.Action == seekbar.ActionDown {
			p.captured = nil
			if len(ev.Pointers) == 0 {
				continue
			}
			pt := ev.Pointers[0]
			target := p.barAt(point{X: pt.X, Y: pt.Y})
			if target == nil {
				continue
			}
			if target.handle(ev) {
				p.capture(target)
			}
			continue
		}
		rb := p.captured
		if rb == nil {
			continue
		}
		rb.handle(ev)
		if ev.Action == seekbar.ActionUp || ev.Action == seekbar.ActionCancel {
			p.captured = nil
		}
	}
}

// Captured returns the bar owning the current gesture, if any.
func (p *Panel) Captured() *RangeBar { return p.captured }

func (p *Panel) capture(rb *RangeBar) {
	if p.captured == rb {
		return
	}
	p.captured = rb
	p.logger.Debugw("gesture captured", "bar", rb.Label)
}

func (p *Panel) barAt(pt point) *RangeBar {
	for _, rb := range p.bars {
		if rb.track.containsPoint(pt) {
			return rb
		}
	}
	return nil
}

// Bounds returns the panel area covering every bar.
func (p *Panel) Bounds() rect {
	r := rect{X0: p.Position.X, Y0: p.Position.Y, X1: p.Position.X + p.Width, Y1: p.Position.Y + p.Height()}
	for _, rb := range p.bars {
		r = unionRect(r, rb.Rect)
	}
	return r
}

// NeedsRedraw reports whether any bar changed since the last paint.
func (p *Panel) NeedsRedraw() bool {
	if p.stale {
		return true
	}
	for _, rb := range p.bars {
		if rb.bar.Dirty() {
			return true
		}
	}
	return false
}

// Draw copies the cached panel image to screen, repainting it first when
// NeedsRedraw says so.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.canvas == nil || p.NeedsRedraw() {
		p.paint()
	}
	if p.canvas != nil {
		screen.DrawImage(p.canvas, nil)
	}
}

func (p *Panel) paint() {
	b := p.Bounds()
	w, h := int(math.Ceil(float64(b.X1))), int(math.Ceil(float64(b.Y1)))
	if w <= 0 || h <= 0 {
		return
	}
	if p.canvas != nil && (p.canvas.Bounds().Dx() != w || p.canvas.Bounds().Dy() != h) {
		p.canvas.Deallocate()
		p.canvas = nil
	}
	if p.canvas == nil {
		p.canvas = ebiten.NewImage(w, h)
	} else {
		p.canvas.Clear()
	}
	drawFilledRect(p.canvas, b.X0, b.Y0, b.width(), b.height(), p.Theme.Background, false)
	for _, rb := range p.bars {
		rb.Draw(p.canvas, p.Theme)
	}
	p.stale = false
}
