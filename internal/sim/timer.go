package sim

import "math"

// Timer is a repeating countdown. Time past the interval carries over into
// the next period, so the spawn cadence does not drift with frame jitter.
type Timer struct {
	interval float64
	elapsed  float64
}

// NewTimer creates a timer that fires every interval seconds.
func NewTimer(interval float64) *Timer {
	return &Timer{interval: interval}
}

// Tick advances the timer and reports whether it fired during this tick.
// A tick longer than several intervals still fires once.
func (t *Timer) Tick(dt float64) bool {
	if t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.interval)
	return true
}

// Reset restarts the current period.
func (t *Timer) Reset() {
	t.elapsed = 0
}

