package sim

// FlapQueue buffers flap intents between input intake and the flap pass.
// It holds at most one intent; pushes into a full queue are dropped.
type FlapQueue struct {
	pending bool
}

// Push enqueues an intent and reports whether it was kept.
func (q *FlapQueue) Push() bool {
	if q.pending {
		return false
	}
	q.pending = true
	return true
}

// Pop consumes the pending intent, if any.
func (q *FlapQueue) Pop() bool {
	if !q.pending {
		return false
	}
	q.pending = false
	return true
}

// Len returns 0 or 1.
func (q *FlapQueue) Len() int {
	if q.pending {
		return 1
	}
	return 0
}

// Clear discards the pending intent.
func (q *FlapQueue) Clear() {
	q.pending = false
}
