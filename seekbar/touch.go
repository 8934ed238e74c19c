package seekbar

// Action is the kind of a pointer event.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
	ActionPointerDown
	ActionPointerUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionPointerUp:
		return "pointer-up"
	}
	return "unknown"
}

// Pointer is one contact of a MotionEvent in widget-local pixels.
type Pointer struct {
	ID   int
	X, Y float32
}

// MotionEvent carries every pointer that is down when the event happens.
// ActionIndex names the pointer that went down or up for ActionPointerDown
// and ActionPointerUp.
type MotionEvent struct {
	Action      Action
	ActionIndex int
	Pointers    []Pointer
}

// FindPointerIndex returns the index of the pointer with id, or -1.
func (ev MotionEvent) FindPointerIndex(id int) int {
	for i, p := range ev.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (ev MotionEvent) x(index int) (float32, bool) {
	if index < 0 || index >= len(ev.Pointers) {
		return 0, false
	}
	return ev.Pointers[index].X, true
}

// session is the transient drag state between a claimed down and the
// matching up or cancel. pressed == ThumbNone means no gesture. offsetX is
// added to the tracked pointer so a hand-over between pointers keeps the
// thumb where it is.
type session struct {
	activePointerID int
	downX           float32
	offsetX         float32
	pressed         Thumb
	dragging        bool
}

// PressedThumb returns the thumb held by the current gesture.
func (b *Bar) PressedThumb() Thumb { return b.session.pressed }

// Dragging reports whether the current gesture moved past the touch slop.
func (b *Bar) Dragging() bool { return b.session.dragging }

// Pressed reports whether the widget shows its pressed state.
func (b *Bar) Pressed() bool { return b.pressed }

// OnTouchEvent feeds one pointer event to the state machine. It returns
// false when the event is not consumed: the bar is disabled, or a down
// event missed both thumbs.
func (b *Bar) OnTouchEvent(ev MotionEvent) bool {
	if !b.enabled {
		return false
	}
	switch ev.Action {
	case ActionDown:
		return b.onDown(ev)
	case ActionMove:
		if b.session.pressed == ThumbNone {
			return false
		}
		b.onMove(ev)
	case ActionUp:
		if b.session.pressed == ThumbNone {
			return false
		}
		b.onUp(ev)
	case ActionPointerDown:
		if b.session.pressed == ThumbNone {
			return false
		}
		if x, ok := ev.x(ev.ActionIndex); ok {
			b.retarget(ev.Pointers[ev.ActionIndex].ID, x)
		}
		b.markDirty()
	case ActionPointerUp:
		if b.session.pressed == ThumbNone {
			return false
		}
		b.onSecondaryPointerUp(ev)
		b.markDirty()
	case ActionCancel:
		if b.session.pressed == ThumbNone {
			b.markDirty()
			return false
		}
		b.cancelSession()
	default:
		return false
	}
	return true
}

func (b *Bar) onDown(ev MotionEvent) bool {
	if len(ev.Pointers) == 0 {
		return false
	}
	last := ev.Pointers[len(ev.Pointers)-1]
	thumb := b.evalPressedThumb(last.X)
	if thumb == ThumbNone {
		return false
	}
	b.session = session{
		activePointerID: last.ID,
		downX:           last.X,
		pressed:         thumb,
	}
	b.pressed = true
	b.markDirty()
	b.logger.Debugw("Thumb pressed", "thumb", thumb, "x", last.X)
	b.trackTouchEvent(ev)
	b.attemptClaimDrag()
	return true
}

func (b *Bar) onMove(ev MotionEvent) {
	if b.session.dragging {
		b.trackTouchEvent(ev)
		b.notifyChanging()
		return
	}
	x, ok := ev.x(ev.FindPointerIndex(b.session.activePointerID))
	if !ok {
		return
	}
	if abs32(x-b.session.downX) > b.touchSlop {
		b.pressed = true
		b.session.dragging = true
		b.markDirty()
		b.logger.Debugw("Drag started", "thumb", b.session.pressed, "x", x)
		b.trackTouchEvent(ev)
		b.attemptClaimDrag()
		b.notifyChanging()
	}
}

// onUp performs a final track so a tap without movement still seeks to the
// touch position.
func (b *Bar) onUp(ev MotionEvent) {
	b.trackTouchEvent(ev)
	b.logger.Debugw("Gesture ended", "thumb", b.session.pressed,
		"min", b.SelectedMin(), "max", b.SelectedMax())
	b.endSession()
	b.notifyChanged()
}

func (b *Bar) cancelSession() {
	b.logger.Debugw("Gesture cancelled", "thumb", b.session.pressed)
	b.endSession()
}

func (b *Bar) endSession() {
	b.session = session{activePointerID: invalidPointerID}
	b.pressed = false
	b.markDirty()
}

// onSecondaryPointerUp hands tracking to another pointer when the active one
// lifts, resetting the down position so the next move does not jump.
func (b *Bar) onSecondaryPointerUp(ev MotionEvent) {
	idx := ev.ActionIndex
	if idx < 0 || idx >= len(ev.Pointers) {
		return
	}
	if ev.Pointers[idx].ID != b.session.activePointerID {
		return
	}
	next := 1
	if idx != 0 {
		next = 0
	}
	x, ok := ev.x(next)
	if !ok {
		return
	}
	b.retarget(ev.Pointers[next].ID, x)
}

// retarget hands the gesture to pointer id. The offset keeps the thumb where
// it is, so the next move is relative to the new pointer's position.
func (b *Bar) retarget(id int, x float32) {
	thumbX := b.normalizedToScreen(b.normMin)
	if b.session.pressed == ThumbMax {
		thumbX = b.normalizedToScreen(b.normMax)
	}
	b.session.activePointerID = id
	b.session.downX = x
	b.session.offsetX = thumbX - x
	b.logger.Debugw("Tracking moved to another pointer", "pointer", id, "x", x)
}

func (b *Bar) trackTouchEvent(ev MotionEvent) {
	x, ok := ev.x(ev.FindPointerIndex(b.session.activePointerID))
	if !ok {
		return
	}
	n := b.screenToNormalized(x + b.session.offsetX)
	if b.stepsEnabled {
		n = b.closestStep(n)
	}
	switch b.session.pressed {
	case ThumbMin:
		b.CancelAnimation(ThumbMin)
		b.setNormalizedMin(n)
	case ThumbMax:
		b.CancelAnimation(ThumbMax)
		b.setNormalizedMax(n)
	}
}

func (b *Bar) attemptClaimDrag() {
	if b.parent != nil {
		b.parent.ClaimDrag()
	}
}

// evalPressedThumb decides which thumb, if any, is under touchX. When both
// are, the touch position relative to the widget midpoint picks the thumb
// with more room to move: right half takes MIN, left half takes MAX.
func (b *Bar) evalPressedThumb(touchX float32) Thumb {
	minHit := b.isInThumbRange(touchX, b.normMin)
	maxHit := b.isInThumbRange(touchX, b.normMax)
	switch {
	case minHit && maxHit:
		if b.width > 0 && touchX/b.width > 0.5 {
			return ThumbMin
		}
		return ThumbMax
	case minHit:
		return ThumbMin
	case maxHit:
		return ThumbMax
	}
	return ThumbNone
}

func (b *Bar) isInThumbRange(touchX, norm float32) bool {
	return abs32(touchX-b.normalizedToScreen(norm)) <= b.thumbHalfWidth
}
