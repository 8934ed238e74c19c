package eui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"rangeseek/seekbar"
)

// mousePointerID is the pointer id used for the left mouse button; touch ids
// are shifted above it.
const mousePointerID = 0

// samplePointers returns every contact currently down in screen pixels.
// Touches win over the mouse so a touch screen that also moves the cursor
// does not report a phantom second pointer.
func samplePointers() []seekbar.Pointer {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		res := make([]seekbar.Pointer, 0, len(ids))
		for _, id := range ids {
			x, y := ebiten.TouchPosition(id)
			res = append(res, seekbar.Pointer{ID: int(id) + 1, X: float32(x), Y: float32(y)})
		}
		return res
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		x, y := ebiten.CursorPosition()
		return []seekbar.Pointer{{ID: mousePointerID, X: float32(x), Y: float32(y)}}
	}
	return nil
}

// pointerTracker turns per-frame pointer snapshots into motion events:
// lifted pointers first, then one move for the survivors, then new pointers.
type pointerTracker struct {
	active []seekbar.Pointer
}

func (pt *pointerTracker) indexOf(id int) int {
	for i, p := range pt.active {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (pt *pointerTracker) snapshot() []seekbar.Pointer {
	return append([]seekbar.Pointer(nil), pt.active...)
}

func (pt *pointerTracker) update(cur []seekbar.Pointer) []seekbar.MotionEvent {
	var events []seekbar.MotionEvent

	for i := 0; i < len(pt.active); {
		if containsPointer(cur, pt.active[i].ID) {
			i++
			continue
		}
		ev := seekbar.MotionEvent{Action: seekbar.ActionPointerUp, ActionIndex: i, Pointers: pt.snapshot()}
		if len(pt.active) == 1 {
			ev.Action = seekbar.ActionUp
			ev.ActionIndex = 0
		}
		events = append(events, ev)
		pt.active = append(pt.active[:i], pt.active[i+1:]...)
	}

	moved := false
	for i, p := range pt.active {
		for _, c := range cur {
			if c.ID == p.ID && (c.X != p.X || c.Y != p.Y) {
				pt.active[i] = c
				moved = true
			}
		}
	}
	if moved {
		events = append(events, seekbar.MotionEvent{Action: seekbar.ActionMove, Pointers: pt.snapshot()})
	}

	for _, c := range cur {
		if pt.indexOf(c.ID) >= 0 {
			continue
		}
		pt.active = append(pt.active, c)
		ev := seekbar.MotionEvent{Action: seekbar.ActionPointerDown, ActionIndex: len(pt.active) - 1, Pointers: pt.snapshot()}
		if len(pt.active) == 1 {
			ev.Action = seekbar.ActionDown
			ev.ActionIndex = 0
		}
		events = append(events, ev)
	}
	return events
}

// cancel drops every tracked pointer, returning a cancel event when a
// gesture was in progress.
func (pt *pointerTracker) cancel() []seekbar.MotionEvent {
	if len(pt.active) == 0 {
		return nil
	}
	ev := seekbar.MotionEvent{Action: seekbar.ActionCancel, Pointers: pt.snapshot()}
	pt.active = pt.active[:0]
	return []seekbar.MotionEvent{ev}
}

func containsPointer(list []seekbar.Pointer, id int) bool {
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}
