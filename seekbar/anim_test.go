package seekbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnimBar(t *testing.T) (*Bar, *recorder, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	b := New(DefaultConfig(), WithListener(rec), WithClock(clock))
	return b, rec, clock
}

func TestAnimateSelectedMax(t *testing.T) {
	b, rec, clock := newAnimBar(t)
	b.SetSelectedMin(25)
	require.Equal(t, float32(25), b.SelectedMin())
	rec.events = nil

	start := clock.now
	b.AnimateSelectedMax(86, 2000*time.Millisecond)
	require.True(t, b.Animating())
	assert.Empty(t, rec.events, "starting does not apply a frame")

	prev := b.SelectedMax()
	frames := 0
	for elapsed := 100 * time.Millisecond; elapsed <= 2000*time.Millisecond; elapsed += 100 * time.Millisecond {
		clock.now = start.Add(elapsed)
		b.Tick(clock.now)
		frames++
		cur := b.SelectedMax()
		assert.Less(t, cur, prev, "frame at %v", elapsed)
		assert.GreaterOrEqual(t, cur, float32(86))
		assert.Equal(t, frames, rec.count("changed"), "one changed per frame")
		prev = cur
	}
	assert.False(t, b.Animating())
	assert.Equal(t, float32(86), b.SelectedMax())
	assert.Equal(t, recordedEvent{"changed", 25, 86}, rec.last())

	b.Tick(start.Add(3 * time.Second))
	assert.Equal(t, frames, rec.count("changed"), "no frames after the end")
}

func TestAnimationDecelerates(t *testing.T) {
	b, _, clock := newAnimBar(t)
	b.SetSelectedMax(0)
	start := clock.now
	b.AnimateSelectedMax(100, time.Second)

	b.Tick(start.Add(250 * time.Millisecond))
	first := b.SelectedMax()
	b.Tick(start.Add(500 * time.Millisecond))
	second := b.SelectedMax() - first
	assert.Greater(t, first, second, "early frames cover more ground")
	assert.InDelta(t, 75, b.SelectedMax(), 1e-3)
}

func TestLinearInterpolator(t *testing.T) {
	b, _, clock := newAnimBar(t)
	b.SetInterpolator(Linear)
	b.SetSelectedMax(0)
	b.AnimateSelectedMax(100, time.Second)
	b.Tick(clock.now.Add(250 * time.Millisecond))
	assert.InDelta(t, 25, b.SelectedMax(), 1e-3)

	b.SetInterpolator(nil)
	b.AnimateSelectedMax(0, time.Second)
	b.Tick(clock.now.Add(500 * time.Millisecond))
	assert.InDelta(t, 25*0.25, b.SelectedMax(), 1e-3, "nil restores Decelerate")
}

func TestCancelAnimationKeepsLastValue(t *testing.T) {
	b, rec, clock := newAnimBar(t)
	start := clock.now
	b.AnimateSelectedMin(80, time.Second)
	b.Tick(start.Add(500 * time.Millisecond))
	mid := b.SelectedMin()
	require.Greater(t, mid, float32(0))
	require.Less(t, mid, float32(80))

	b.CancelAnimation(ThumbMin)
	assert.False(t, b.Animating())
	n := len(rec.events)
	b.Tick(start.Add(2 * time.Second))
	assert.Equal(t, mid, b.SelectedMin())
	assert.Len(t, rec.events, n)
}

func TestNewAnimationReplacesOld(t *testing.T) {
	b, _, clock := newAnimBar(t)
	start := clock.now
	b.AnimateSelectedMin(80, time.Second)
	b.Tick(start.Add(500 * time.Millisecond))
	mid := b.SelectedMin()

	clock.now = start.Add(500 * time.Millisecond)
	b.AnimateSelectedMin(10, time.Second)
	b.Tick(clock.now)
	assert.InDelta(t, mid, b.SelectedMin(), 1e-4, "replacement starts from the current value")

	b.Tick(clock.now.Add(time.Second))
	assert.InDelta(t, 10, b.SelectedMin(), 1e-4)
	assert.False(t, b.Animating())
}

func TestManualSetCancelsAnimation(t *testing.T) {
	b, _, clock := newAnimBar(t)
	b.AnimateSelectedMax(20, time.Second)
	b.SetSelectedMax(60)
	assert.False(t, b.Animating())
	b.Tick(clock.now.Add(2 * time.Second))
	assert.InDelta(t, 60, b.SelectedMax(), 1e-4)
}

func TestAnimationsRunPerThumb(t *testing.T) {
	b, _, clock := newAnimBar(t)
	b.AnimateSelectedMin(30, time.Second)
	b.AnimateSelectedMax(70, 2*time.Second)
	b.Tick(clock.now.Add(time.Second))
	assert.InDelta(t, 30, b.SelectedMin(), 1e-4)
	assert.True(t, b.Animating())
	b.Tick(clock.now.Add(2 * time.Second))
	assert.InDelta(t, 70, b.SelectedMax(), 1e-4)
	assert.False(t, b.Animating())
}

func TestAnimateBothThumbsUpward(t *testing.T) {
	b, _, clock := newAnimBar(t)
	b.SetSelectedMax(10)
	b.AnimateSelectedMin(60, time.Second)
	b.AnimateSelectedMax(90, time.Second)
	for i := 1; i <= 10; i++ {
		b.Tick(clock.now.Add(time.Duration(i) * 100 * time.Millisecond))
		require.LessOrEqual(t, b.NormalizedMin(), b.NormalizedMax())
	}
	assert.InDelta(t, 60, b.SelectedMin(), 1e-4)
	assert.InDelta(t, 90, b.SelectedMax(), 1e-4)
	assert.False(t, b.Animating())
}
