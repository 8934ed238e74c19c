package seekbar

// State is the persisted form of a bar: enough to restore both the bounds and
// the selection exactly.
type State struct {
	NormMin float32 `json:"min"`
	NormMax float32 `json:"max"`
	Min     float32 `json:"min_range"`
	Max     float32 `json:"max_range"`
}

// SaveState captures the bounds and normalized selection.
func (b *Bar) SaveState() State {
	return State{
		NormMin: b.normMin,
		NormMax: b.normMax,
		Min:     b.minValue,
		Max:     b.maxValue,
	}
}

// RestoreState reinstates st and reports it to the listener, changed first
// then changing. Running animations and any gesture in progress are dropped
// so they cannot overwrite the restored selection. NaN fields are ignored and
// normalized values are clamped so a corrupt store cannot break the
// min <= max invariant. While step mode is on the bounds stay locked and only
// the selection is restored.
func (b *Bar) RestoreState(st State) {
	b.CancelAnimation(ThumbMin)
	b.CancelAnimation(ThumbMax)
	if b.session.pressed != ThumbNone {
		b.cancelSession()
	}

	switch {
	case isNaN(st.Min) || isNaN(st.Max):
	case b.stepsEnabled && (st.Min != b.minValue || st.Max != b.maxValue):
		b.logger.Debugw("Keeping step bounds over saved bounds", "min", st.Min, "max", st.Max)
	default:
		b.minValue, b.maxValue = st.Min, st.Max
	}
	if !isNaN(st.NormMin) && !isNaN(st.NormMax) {
		b.normMin = clamp01(st.NormMin)
		b.normMax = clamp01(max(st.NormMax, b.normMin))
	}
	b.markDirty()
	b.notifyChanged()
	b.notifyChanging()
}
