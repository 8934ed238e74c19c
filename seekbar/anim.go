package seekbar

import "time"

// Interpolator maps elapsed fraction t in [0,1] to progress in [0,1].
type Interpolator func(t float64) float64

// Decelerate starts fast and eases into the target.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Linear advances at a constant rate.
func Linear(t float64) float64 { return t }

type animation struct {
	from, to float32
	start    time.Time
	duration time.Duration
	interp   Interpolator
}

// value returns the interpolated value at now and whether the animation has
// reached its end.
func (a *animation) value(now time.Time) (float32, bool) {
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if a.duration <= 0 || elapsed >= a.duration {
		return a.to, true
	}
	t := float64(elapsed) / float64(a.duration)
	p := float32(a.interp(t))
	return a.from + (a.to-a.from)*p, false
}

// SetInterpolator changes the easing of animations started afterwards. Nil
// restores Decelerate.
func (b *Bar) SetInterpolator(fn Interpolator) {
	if fn == nil {
		fn = Decelerate
	}
	b.interp = fn
}

func (b *Bar) animationFor(t Thumb) **animation {
	if t == ThumbMin {
		return &b.minAnim
	}
	return &b.maxAnim
}

func (b *Bar) startAnimation(t Thumb, to float32, d time.Duration) {
	b.CancelAnimation(t)
	a := &animation{
		from:     b.Selected(t),
		to:       to,
		start:    b.clock.Now(),
		duration: d,
		interp:   b.interp,
	}
	*b.animationFor(t) = a
	b.logger.Debugw("Animation started", "thumb", t, "from", a.from, "to", to, "duration", d)
	b.markDirty()
}

// CancelAnimation stops the running animation on t, leaving the thumb at the
// last applied value.
func (b *Bar) CancelAnimation(t Thumb) {
	if t == ThumbNone {
		return
	}
	slot := b.animationFor(t)
	if *slot != nil {
		b.logger.Debugw("Animation cancelled", "thumb", t)
		*slot = nil
	}
}

// Animating reports whether Tick still has frames to apply.
func (b *Bar) Animating() bool {
	return b.minAnim != nil || b.maxAnim != nil
}

// Tick applies one animation frame for each running thumb animation. Hosts
// call it once per frame with the frame time. Each frame commits through the
// same path as SetSelected, so the listener sees a changed notification per
// frame, the last one carrying the exact target.
func (b *Bar) Tick(now time.Time) {
	// A min animation heading past the current max must see the max frame
	// first, or it is clamped short on the frame both finish.
	if b.minAnim != nil && b.valueToNormalized(b.minAnim.to) > b.normMax {
		b.tickThumb(ThumbMax, now)
		b.tickThumb(ThumbMin, now)
		return
	}
	b.tickThumb(ThumbMin, now)
	b.tickThumb(ThumbMax, now)
}

func (b *Bar) tickThumb(t Thumb, now time.Time) {
	slot := b.animationFor(t)
	a := *slot
	if a == nil {
		return
	}
	v, done := a.value(now)
	if done {
		*slot = nil
	}
	b.setSelectedVal(t, v)
}
