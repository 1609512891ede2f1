package core

// Clock supplies the elapsed time of the current frame.
type Clock interface {
	DeltaSeconds() float64
}

// FixedClock always reports the same delta. Used by tests, replays and
// headless runs.
type FixedClock float64

// DeltaSeconds returns the fixed delta.
func (c FixedClock) DeltaSeconds() float64 {
	return float64(c)
}

// FixedClockForRate returns a clock ticking at the given rate.
func FixedClockForRate(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock(1.0 / float64(tickRate))
}
