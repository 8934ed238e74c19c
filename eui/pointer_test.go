package eui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeseek/seekbar"
)

func ptr(id int, x float32) seekbar.Pointer { return seekbar.Pointer{ID: id, X: x} }

func TestTrackerSinglePointer(t *testing.T) {
	var pt pointerTracker

	evs := pt.update([]seekbar.Pointer{ptr(0, 10)})
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionDown, evs[0].Action)

	evs = pt.update([]seekbar.Pointer{ptr(0, 20)})
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionMove, evs[0].Action)
	assert.Equal(t, float32(20), evs[0].Pointers[0].X)

	assert.Empty(t, pt.update([]seekbar.Pointer{ptr(0, 20)}), "stationary pointer")

	evs = pt.update(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionUp, evs[0].Action)
	require.Len(t, evs[0].Pointers, 1, "up carries the lifting pointer")
	assert.Equal(t, float32(20), evs[0].Pointers[0].X)
}

func TestTrackerSecondaryPointers(t *testing.T) {
	var pt pointerTracker
	pt.update([]seekbar.Pointer{ptr(1, 10)})

	evs := pt.update([]seekbar.Pointer{ptr(1, 10), ptr(2, 50)})
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionPointerDown, evs[0].Action)
	assert.Equal(t, 1, evs[0].ActionIndex)
	assert.Len(t, evs[0].Pointers, 2)

	evs = pt.update([]seekbar.Pointer{ptr(2, 60)})
	require.Len(t, evs, 2, "pointer up then move")
	assert.Equal(t, seekbar.ActionPointerUp, evs[0].Action)
	assert.Equal(t, 0, evs[0].ActionIndex)
	assert.Len(t, evs[0].Pointers, 2)
	assert.Equal(t, seekbar.ActionMove, evs[1].Action)
	require.Len(t, evs[1].Pointers, 1)
	assert.Equal(t, float32(60), evs[1].Pointers[0].X)

	evs = pt.update(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionUp, evs[0].Action, "last pointer produces up")
	assert.Equal(t, 2, evs[0].Pointers[0].ID)
}

func TestTrackerCancel(t *testing.T) {
	var pt pointerTracker
	assert.Nil(t, pt.cancel(), "idle cancel")

	pt.update([]seekbar.Pointer{ptr(0, 5)})
	evs := pt.cancel()
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionCancel, evs[0].Action)

	evs = pt.update([]seekbar.Pointer{ptr(0, 5)})
	require.Len(t, evs, 1)
	assert.Equal(t, seekbar.ActionDown, evs[0].Action, "pointer still down after cancel restarts with down")
}
