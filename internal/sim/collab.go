package sim

// Window reports the current play-area size in world units.
// ok is false while the size is unknown; size-dependent passes skip the frame.
type Window interface {
	Size() (w, h float64, ok bool)
}

// StaticWindow is a Window of fixed size. A zero dimension reports unavailable.
type StaticWindow struct {
	W, H float64
}

// Size returns the fixed dimensions.
func (s StaticWindow) Size() (float64, float64, bool) {
	return s.W, s.H, s.W > 0 && s.H > 0
}

// Sound identifies a sound effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundHit
	SoundPoint
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundHit:
		return "hit"
	case SoundPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Audio plays sound effects. Play must not block.
type Audio interface {
	Play(s Sound)
}

// NullAudio discards every sound.
type NullAudio struct{}

// Play does nothing.
func (NullAudio) Play(Sound) {}

// Rand supplies uniform draws in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
