package seekbar

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func down(id int, x float32) MotionEvent {
	return MotionEvent{Action: ActionDown, Pointers: []Pointer{{ID: id, X: x}}}
}

func move(ps ...Pointer) MotionEvent {
	return MotionEvent{Action: ActionMove, Pointers: ps}
}

func up(id int, x float32) MotionEvent {
	return MotionEvent{Action: ActionUp, Pointers: []Pointer{{ID: id, X: x}}}
}

func TestHitTestTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		value  float32
		touchX float32
		want   Thumb
	}{
		{name: "right half prefers min", value: 135, touchX: 150, want: ThumbMin},
		{name: "left half prefers max", value: 35, touchX: 50, want: ThumbMax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBar(t)
			b.SetSelectedMax(tc.value)
			b.SetSelectedMin(tc.value)
			require.InDelta(t, tc.touchX, b.NormalizedToScreen(b.NormalizedMin()), 1e-3)
			require.Equal(t, b.NormalizedMin(), b.NormalizedMax())

			assert.Equal(t, tc.want, b.evalPressedThumb(tc.touchX))
			require.True(t, b.OnTouchEvent(down(1, tc.touchX)))
			assert.Equal(t, tc.want, b.PressedThumb())
		})
	}
}

func TestHitTestTieBreakSharedPosition(t *testing.T) {
	// A 100px thumb at x=100 in a 200px bar covers both touch points.
	thumb := image.NewRGBA(image.Rect(0, 0, 100, 30))
	cfg := DefaultConfig()
	cfg.ThumbNormal, cfg.ThumbPressed = thumb, thumb

	for touchX, want := range map[float32]Thumb{150: ThumbMin, 50: ThumbMax} {
		b := New(cfg)
		b.SetSize(200, 30)
		require.Equal(t, float32(50), b.Padding())
		b.SetSelectedMin(50)
		b.SetSelectedMax(50)
		require.Equal(t, float32(100), b.NormalizedToScreen(b.NormalizedMin()))
		require.Equal(t, float32(100), b.NormalizedToScreen(b.NormalizedMax()))

		assert.Equal(t, want, b.evalPressedThumb(touchX), "touch at %v", touchX)
		require.True(t, b.OnTouchEvent(down(1, touchX)))
		assert.Equal(t, want, b.PressedThumb(), "touch at %v", touchX)
	}
}

func TestDownMissingThumbsIsNotClaimed(t *testing.T) {
	claims := &claimCounter{}
	b, rec := newTestBar(t, WithDragClaimer(claims))
	assert.False(t, b.OnTouchEvent(down(1, 100)))
	assert.Equal(t, ThumbNone, b.PressedThumb())
	assert.False(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 110})))
	assert.False(t, b.OnTouchEvent(up(1, 110)))
	assert.Zero(t, claims.n)
	assert.Empty(t, rec.events)
}

func TestTapSeek(t *testing.T) {
	claims := &claimCounter{}
	b, rec := newTestBar(t, WithDragClaimer(claims))

	require.True(t, b.OnTouchEvent(down(1, 25)))
	assert.Equal(t, ThumbMin, b.PressedThumb())
	assert.False(t, b.Dragging())
	assert.True(t, b.Pressed())
	assert.Equal(t, 1, claims.n)
	assert.InDelta(t, 10, b.SelectedMin(), 1e-4, "down seeks immediately")
	assert.Empty(t, rec.events, "down alone does not notify")

	require.True(t, b.OnTouchEvent(up(1, 25)))
	assert.Equal(t, ThumbNone, b.PressedThumb())
	assert.False(t, b.Pressed())
	require.Len(t, rec.events, 1)
	assert.Equal(t, "changed", rec.events[0].kind)
	assert.InDelta(t, 10, rec.events[0].min, 1e-4)
	assert.Equal(t, float32(170), rec.events[0].max)
}

func TestSlopThenDrag(t *testing.T) {
	b, rec := newTestBar(t)
	require.True(t, b.OnTouchEvent(down(1, 15)))

	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 20})))
	assert.False(t, b.Dragging(), "5px is inside the default slop")
	assert.InDelta(t, 0, b.SelectedMin(), 1e-4)
	assert.Zero(t, rec.count("changing"))

	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 30})))
	assert.True(t, b.Dragging())
	assert.InDelta(t, 15, b.SelectedMin(), 1e-4)
	assert.Equal(t, 1, rec.count("changing"))

	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 32})))
	assert.InDelta(t, 17, b.SelectedMin(), 1e-4, "once dragging every move tracks")
	assert.Equal(t, 2, rec.count("changing"))

	require.True(t, b.OnTouchEvent(up(1, 40)))
	assert.InDelta(t, 25, b.SelectedMin(), 1e-4)
	assert.Equal(t, "changed", rec.last().kind)
	assert.False(t, b.Dragging())
}

func TestDragMaxThumbStopsAtMin(t *testing.T) {
	b, _ := newTestBar(t)
	b.SetSelectedMin(100)
	require.True(t, b.OnTouchEvent(down(1, 185)))
	require.Equal(t, ThumbMax, b.PressedThumb())
	b.OnTouchEvent(move(Pointer{ID: 1, X: 20}))
	assert.Equal(t, b.NormalizedMin(), b.NormalizedMax())
	assert.InDelta(t, 100, b.SelectedMax(), 1e-3)
}

func TestCancelAbandonsGesture(t *testing.T) {
	b, rec := newTestBar(t)
	require.True(t, b.OnTouchEvent(down(1, 15)))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 65})))
	before := b.SelectedMin()
	changed := rec.count("changed")
	b.ClearDirty()

	require.True(t, b.OnTouchEvent(MotionEvent{Action: ActionCancel}))
	assert.Equal(t, ThumbNone, b.PressedThumb())
	assert.False(t, b.Dragging())
	assert.Equal(t, before, b.SelectedMin())
	assert.Equal(t, changed, rec.count("changed"))
	assert.True(t, b.Dirty(), "cancel still repaints")

	// the next up belongs to no gesture
	assert.False(t, b.OnTouchEvent(up(1, 100)))
	assert.Equal(t, before, b.SelectedMin())
}

func TestUnresolvablePointerIsIgnored(t *testing.T) {
	b, rec := newTestBar(t)
	require.True(t, b.OnTouchEvent(down(1, 15)))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 65})))
	before := b.SelectedMin()

	assert.True(t, b.OnTouchEvent(move(Pointer{ID: 9, X: 150})))
	assert.True(t, b.OnTouchEvent(move()))
	assert.True(t, b.OnTouchEvent(MotionEvent{Action: ActionPointerUp, ActionIndex: 4}))
	assert.Equal(t, before, b.SelectedMin())

	require.True(t, b.OnTouchEvent(up(9, 150)))
	assert.Equal(t, before, b.SelectedMin())
	assert.Equal(t, "changed", rec.last().kind)
}

func TestDisabledIgnoresInput(t *testing.T) {
	b, rec := newTestBar(t)
	b.SetEnabled(false)
	assert.False(t, b.OnTouchEvent(down(1, 15)))
	assert.Equal(t, ThumbNone, b.PressedThumb())
	assert.Empty(t, rec.events)

	b.SetEnabled(true)
	require.True(t, b.OnTouchEvent(down(1, 15)))
	b.SetEnabled(false)
	assert.Equal(t, ThumbNone, b.PressedThumb(), "disabling drops the gesture")
}

func TestSecondaryPointerUpRetargets(t *testing.T) {
	b, _ := newTestBar(t)
	require.True(t, b.OnTouchEvent(down(1, 15)))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 60})))
	require.InDelta(t, 45, b.SelectedMin(), 1e-4)

	// a second finger lands and takes over without moving the thumb
	require.True(t, b.OnTouchEvent(MotionEvent{
		Action:      ActionPointerDown,
		ActionIndex: 1,
		Pointers:    []Pointer{{ID: 1, X: 60}, {ID: 2, X: 120}},
	}))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 60}, Pointer{ID: 2, X: 120})))
	assert.InDelta(t, 45, b.SelectedMin(), 1e-3)
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 60}, Pointer{ID: 2, X: 130})))
	assert.InDelta(t, 55, b.SelectedMin(), 1e-3)

	// the tracked finger lifts; tracking returns to the first one
	require.True(t, b.OnTouchEvent(MotionEvent{
		Action:      ActionPointerUp,
		ActionIndex: 1,
		Pointers:    []Pointer{{ID: 1, X: 60}, {ID: 2, X: 130}},
	}))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 60})))
	assert.InDelta(t, 55, b.SelectedMin(), 1e-3, "no jump on the next move")

	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 70})))
	assert.InDelta(t, 65, b.SelectedMin(), 1e-3)
}

func TestSecondaryPointerUpOfOtherPointer(t *testing.T) {
	b, _ := newTestBar(t)
	require.True(t, b.OnTouchEvent(down(1, 15)))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 60})))
	require.True(t, b.OnTouchEvent(MotionEvent{
		Action:      ActionPointerUp,
		ActionIndex: 1,
		Pointers:    []Pointer{{ID: 1, X: 60}, {ID: 5, X: 150}},
	}))
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: 80})))
	assert.InDelta(t, 65, b.SelectedMin(), 1e-3)
}

func TestDragWithStepsSnaps(t *testing.T) {
	b, _ := newTestBar(t)
	b.EnableSteps(true)
	b.SetSteps([]float32{25, 50, 75})
	b.SetSelectedMin(0)

	require.True(t, b.OnTouchEvent(down(1, 15)))
	x := b.NormalizedToScreen(0.6)
	require.True(t, b.OnTouchEvent(move(Pointer{ID: 1, X: x})))
	assert.Equal(t, float32(0.5), b.NormalizedMin())
	require.True(t, b.OnTouchEvent(up(1, x)))
	assert.Equal(t, float32(50), b.SelectedMin())
}

func TestDragCancelsRunningAnimation(t *testing.T) {
	b, _ := newTestBar(t)
	b.AnimateSelectedMin(100, 0)
	require.True(t, b.Animating())
	require.True(t, b.OnTouchEvent(down(1, 15)))
	assert.False(t, b.Animating())
}
