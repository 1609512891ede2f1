package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerRepeatsAndCarriesRemainder(t *testing.T) {
	timer := NewTimer(1.0)

	assert.False(t, timer.Tick(0.6))
	assert.True(t, timer.Tick(0.6))
	assert.InDelta(t, 0.2, timer.elapsed, 1e-9)

	assert.False(t, timer.Tick(0.7))
	assert.True(t, timer.Tick(0.2))

	timer.Reset()
	assert.Zero(t, timer.elapsed)
}

func TestTimerLongTickFiresOnce(t *testing.T) {
	timer := NewTimer(1.0)
	assert.True(t, timer.Tick(3.5))
	assert.InDelta(t, 0.5, timer.elapsed, 1e-9)
}

func TestTimerZeroIntervalNeverFires(t *testing.T) {
	timer := NewTimer(0)
	assert.False(t, timer.Tick(10))
}

func TestFlapQueueHoldsOneIntent(t *testing.T) {
	var q FlapQueue

	assert.True(t, q.Push())
	assert.False(t, q.Push(), "second intent must be dropped")
	assert.Equal(t, 1, q.Len())

	assert.True(t, q.Pop())
	assert.False(t, q.Pop())
	assert.Equal(t, 0, q.Len())

	q.Push()
	q.Clear()
	assert.False(t, q.Pop())
}
