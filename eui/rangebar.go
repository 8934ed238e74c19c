package eui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"rangeseek/seekbar"
)

// NewRangeBar creates a range bar from the engine configuration. The returned
// handler receives a UIEvent for every changing and changed notification.
func NewRangeBar(label string, cfg seekbar.Config, opts ...seekbar.Option) (*RangeBar, *EventHandler) {
	rb := &RangeBar{
		Label:   label,
		handler: newHandler(),
		images:  map[any]*ebiten.Image{},
	}
	opts = append(opts, seekbar.WithListener(rb), seekbar.WithDragClaimer(rb))
	rb.bar = seekbar.New(cfg, opts...)
	return rb, rb.handler
}

// Bar exposes the underlying engine.
func (rb *RangeBar) Bar() *seekbar.Bar { return rb.bar }

// Handler returns the event handler created with the bar.
func (rb *RangeBar) Handler() *EventHandler { return rb.handler }

func (rb *RangeBar) OnChanging(minValue, maxValue float32) {
	rb.handler.Emit(UIEvent{Item: rb, Type: EventRangeChanging, Min: minValue, Max: maxValue})
}

func (rb *RangeBar) OnChanged(minValue, maxValue float32) {
	rb.handler.Emit(UIEvent{Item: rb, Type: EventRangeChanged, Min: minValue, Max: maxValue})
}

// ClaimDrag asks the owning panel to route the rest of the gesture here.
func (rb *RangeBar) ClaimDrag() {
	if rb.panel != nil {
		rb.panel.capture(rb)
	}
}

// Readout formats the current selection.
func (rb *RangeBar) Readout() string {
	format := rb.Format
	if format == nil {
		format = func(v float32) string { return fmt.Sprintf("%.0f", v) }
	}
	return format(rb.bar.SelectedMin()) + " to " + format(rb.bar.SelectedMax())
}

// layout positions the bar at x,y and returns the height it occupies.
func (rb *RangeBar) layout(x, y, width float32, th *Theme) float32 {
	labelH := textHeight(th.FontSize)
	_, h := rb.bar.Measure(width, 0)
	rb.bar.SetSize(width, h)
	top := y + labelH + th.LabelGap
	rb.track = rect{X0: x, Y0: top, X1: x + width, Y1: top + h}
	rb.Rect = rect{X0: x, Y0: y, X1: x + width, Y1: rb.track.Y1}
	rb.bar.ClearDirty()
	return rb.Rect.height()
}

// handle feeds a screen space event to the engine in track coordinates.
func (rb *RangeBar) handle(ev seekbar.MotionEvent) bool {
	local := seekbar.MotionEvent{
		Action:      ev.Action,
		ActionIndex: ev.ActionIndex,
		Pointers:    make([]seekbar.Pointer, len(ev.Pointers)),
	}
	for i, p := range ev.Pointers {
		local.Pointers[i] = seekbar.Pointer{ID: p.ID, X: p.X - rb.track.X0, Y: p.Y - rb.track.Y0}
	}
	return rb.bar.OnTouchEvent(local)
}

// Draw renders the caption, the readout and the engine.
func (rb *RangeBar) Draw(screen *ebiten.Image, th *Theme) {
	pad := rb.bar.Padding()
	label := rb.Label
	if !rb.bar.Enabled() {
		label += " (disabled)"
	}
	drawText(screen, label, th.FontSize, rb.Rect.X0+pad, rb.Rect.Y0, th.Text, text.AlignStart)
	drawText(screen, rb.Readout(), th.FontSize, rb.Rect.X1-pad, rb.Rect.Y0, th.Value, text.AlignEnd)

	s := &imageSurface{dst: screen, origin: point{X: rb.track.X0, Y: rb.track.Y0}, images: rb.images}
	rb.bar.Draw(s)
	rb.bar.ClearDirty()
}
