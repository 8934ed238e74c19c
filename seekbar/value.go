package seekbar

import (
	"math"
	"time"
)

func isNaN(v float32) bool { return v != v }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MinValue returns the absolute lower bound.
func (b *Bar) MinValue() float32 { return b.minValue }

// MaxValue returns the absolute upper bound.
func (b *Bar) MaxValue() float32 { return b.maxValue }

// SelectedMin returns the value under the MIN thumb.
func (b *Bar) SelectedMin() float32 { return b.normalizedToValue(b.normMin) }

// SelectedMax returns the value under the MAX thumb.
func (b *Bar) SelectedMax() float32 { return b.normalizedToValue(b.normMax) }

// Selected returns the value under thumb, or the lower bound for ThumbNone.
func (b *Bar) Selected(t Thumb) float32 {
	switch t {
	case ThumbMin:
		return b.SelectedMin()
	case ThumbMax:
		return b.SelectedMax()
	}
	return b.minValue
}

// NormalizedMin and NormalizedMax expose the thumb positions in [0,1].
func (b *Bar) NormalizedMin() float32 { return b.normMin }
func (b *Bar) NormalizedMax() float32 { return b.normMax }

// SetMinValue changes the absolute lower bound. It is rejected while steps
// are enabled or when v is NaN.
func (b *Bar) SetMinValue(v float32) bool {
	return b.SetBounds(v, b.maxValue)
}

// SetMaxValue changes the absolute upper bound. It is rejected while steps
// are enabled or when v is NaN.
func (b *Bar) SetMaxValue(v float32) bool {
	return b.SetBounds(b.minValue, v)
}

// SetBounds replaces the absolute range. Thumb positions keep their
// normalized place so the selected values follow the new bounds, except that
// a degenerate range pins MIN to 0 and MAX to 1. Returns false, leaving the
// bar untouched, while step mode is active or if either bound is NaN.
func (b *Bar) SetBounds(minValue, maxValue float32) bool {
	if b.stepsEnabled {
		b.logger.Debugw("Rejected bounds change while steps are enabled", "min", minValue, "max", maxValue)
		return false
	}
	if isNaN(minValue) || isNaN(maxValue) {
		b.logger.Debugw("Rejected NaN bounds", "min", minValue, "max", maxValue)
		return false
	}
	b.applyBounds(minValue, maxValue)
	return true
}

func (b *Bar) applyBounds(minValue, maxValue float32) {
	b.minValue, b.maxValue = minValue, maxValue
	if b.maxValue-b.minValue == 0 {
		b.setNormalizedMin(degenerateNormalizedMin)
		b.setNormalizedMax(degenerateNormalizedMax)
	}
	b.markDirty()
	b.notifyChanged()
}

// SetSelectedMin moves the MIN thumb to value immediately.
func (b *Bar) SetSelectedMin(value float32) {
	b.SetSelected(ThumbMin, value, false, 0)
}

// SetSelectedMax moves the MAX thumb to value immediately.
func (b *Bar) SetSelectedMax(value float32) {
	b.SetSelected(ThumbMax, value, false, 0)
}

// AnimateSelectedMin moves the MIN thumb to value over d.
func (b *Bar) AnimateSelectedMin(value float32, d time.Duration) {
	b.SetSelected(ThumbMin, value, true, d)
}

// AnimateSelectedMax moves the MAX thumb to value over d.
func (b *Bar) AnimateSelectedMax(value float32, d time.Duration) {
	b.SetSelected(ThumbMax, value, true, d)
}

// SetSelected moves thumb to value, optionally animating over d
// (DefaultAnimateDuration when d <= 0). A non-animated set cancels any
// running animation on that thumb. NaN values are ignored.
func (b *Bar) SetSelected(t Thumb, value float32, animate bool, d time.Duration) {
	if isNaN(value) || t == ThumbNone {
		return
	}
	if animate {
		if d <= 0 {
			d = DefaultAnimateDuration
		}
		b.startAnimation(t, value, d)
		return
	}
	b.CancelAnimation(t)
	b.setSelectedVal(t, value)
}

func (b *Bar) setSelectedVal(t Thumb, value float32) {
	switch t {
	case ThumbMin:
		b.setSelectedMinVal(value)
	case ThumbMax:
		b.setSelectedMaxVal(value)
	}
}

func (b *Bar) setSelectedMinVal(value float32) {
	if b.maxValue-b.minValue == 0 {
		b.setNormalizedMin(degenerateNormalizedMin)
	} else {
		b.setNormalizedMin(b.valueToNormalized(value))
	}
	b.notifyChanged()
}

func (b *Bar) setSelectedMaxVal(value float32) {
	if b.maxValue-b.minValue == 0 {
		b.setNormalizedMax(degenerateNormalizedMax)
	} else {
		b.setNormalizedMax(b.valueToNormalized(value))
	}
	b.notifyChanged()
}

// setNormalizedMin keeps 0 <= normMin <= normMax <= 1.
func (b *Bar) setNormalizedMin(n float32) {
	if isNaN(n) {
		return
	}
	b.normMin = clamp01(min(n, b.normMax))
	b.markDirty()
}

// setNormalizedMax keeps 0 <= normMin <= normMax <= 1.
func (b *Bar) setNormalizedMax(n float32) {
	if isNaN(n) {
		return
	}
	b.normMax = clamp01(max(n, b.normMin))
	b.markDirty()
}

func (b *Bar) normalizedToValue(n float32) float32 {
	return b.minValue + n*(b.maxValue-b.minValue)
}

func (b *Bar) valueToNormalized(v float32) float32 {
	if b.maxValue-b.minValue == 0 {
		return 0
	}
	return (v - b.minValue) / (b.maxValue - b.minValue)
}

func (b *Bar) normalizedToScreen(n float32) float32 {
	return b.padding + n*(b.width-2*b.padding)
}

func (b *Bar) screenToNormalized(x float32) float32 {
	if b.width <= 2*b.padding {
		return 0
	}
	return clamp01((x - b.padding) / (b.width - 2*b.padding))
}

// NormalizedToScreen converts a thumb position in [0,1] to an x offset
// within the widget.
func (b *Bar) NormalizedToScreen(n float32) float32 { return b.normalizedToScreen(n) }

// ScreenToNormalized converts an x offset within the widget to [0,1]. A
// widget too narrow to hold its padding maps everything to 0.
func (b *Bar) ScreenToNormalized(x float32) float32 { return b.screenToNormalized(x) }

// ValueToNormalized converts an absolute value using the current bounds.
func (b *Bar) ValueToNormalized(v float32) float32 { return b.valueToNormalized(v) }

// NormalizedToValue converts a position in [0,1] to an absolute value.
func (b *Bar) NormalizedToValue(n float32) float32 { return b.normalizedToValue(n) }

func abs32(v float32) float32 { return float32(math.Abs(float64(v))) }
