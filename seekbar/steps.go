package seekbar

// EnableSteps turns progress-by-steps on or off. Enabling forces the bounds
// to DefaultMinValue..DefaultMaxValue; while enabled SetBounds is rejected.
func (b *Bar) EnableSteps(enable bool) {
	b.stepsEnabled = enable
	if enable {
		b.applyBounds(DefaultMinValue, DefaultMaxValue)
		if len(b.steps) == 0 {
			b.steps = bracketSteps(nil)
		}
	}
	b.requestLayout()
}

// StepsEnabled reports whether thumbs snap to the step lattice.
func (b *Bar) StepsEnabled() bool { return b.stepsEnabled }

// SetSteps replaces the step values. DefaultMinValue and DefaultMaxValue are
// always added as the first and last steps; callers should pass values in
// ascending order since ties snap to the earlier step.
func (b *Bar) SetSteps(values []float32) {
	b.steps = bracketSteps(values)
	b.markDirty()
}

// Steps returns the step lattice as absolute values.
func (b *Bar) Steps() []float32 {
	res := make([]float32, 0, len(b.steps))
	for _, n := range b.steps {
		res = append(res, b.normalizedToValue(n))
	}
	return res
}

// SetStepRadius sets the radius in pixels of the step markers. The marker
// radius also bounds the edge padding.
func (b *Bar) SetStepRadius(px float32) {
	if px < 0 {
		px = 0
	}
	b.stepRadius = px
	b.updatePadding()
	b.requestLayout()
}

func (b *Bar) StepRadius() float32 { return b.stepRadius }

// bracketSteps normalizes values against the fixed step range and wraps them
// with 0 and 1.
func bracketSteps(values []float32) []float32 {
	const span = DefaultMaxValue - DefaultMinValue
	res := make([]float32, 0, len(values)+2)
	res = append(res, 0)
	for _, v := range values {
		if isNaN(v) {
			continue
		}
		res = append(res, (v-DefaultMinValue)/span)
	}
	return append(res, 1)
}

// closestStep returns the lattice entry nearest n. On ties the first entry
// scanned wins.
func (b *Bar) closestStep(n float32) float32 {
	if len(b.steps) == 0 {
		return n
	}
	closest := b.steps[0]
	best := abs32(closest - n)
	for _, step := range b.steps[1:] {
		if d := abs32(step - n); d < best {
			closest, best = step, d
		}
	}
	return closest
}

// SnapToStep returns the step-lattice position nearest n, or n itself when
// steps are disabled.
func (b *Bar) SnapToStep(n float32) float32 {
	if !b.stepsEnabled {
		return n
	}
	return b.closestStep(n)
}
