// Package component defines the data records attached to simulation entities.
// Entities gain behavior by which components they carry; no component knows
// about another.
package component

import "github.com/vovakirdan/tui-flappy/internal/core"

// Player tags the entity controlled by flap input.
type Player struct{}

// Transform is the world position (origin at the screen centre, +Y up) and
// the rotation in radians.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Velocity is measured in world units per second.
type Velocity struct {
	VX, VY float64
}

// Gravity marks an entity as falling. Magnitude is in units per second squared.
type Gravity struct {
	Magnitude float64
}

// Sprite carries the visual extent used both for drawing and as the
// collision box.
type Sprite struct {
	W, H  float64
	Glyph rune
	Color core.Color
	Layer int // Higher layers draw on top
}

// Box returns the sprite's bounding box at the given transform.
func (s Sprite) Box(t Transform) core.AABB {
	return core.NewAABB(t.X, t.Y, s.W, s.H)
}

// Hitbox shrinks the collision box relative to the sprite.
type Hitbox struct {
	Scale float64
}

// Pipe is one half of an obstacle pair. Both halves of a pair carry the
// same GapY and HalfGap.
type Pipe struct {
	Top     bool
	GapY    float64
	HalfGap float64
}

// ScoreGate is carried by exactly one pipe of each pair and awards a point
// once the player is past it.
type ScoreGate struct {
	Passed bool
}

// Despawnable tags entities removed once they scroll beyond the window.
type Despawnable struct{}

// Parallax is an endlessly scrolling background layer. X wraps into a band of
// width LoopX.
type Parallax struct {
	Name    string
	Speed   float64
	LoopX   float64
	Anchor  string
	Row     int
	Pattern []rune
	Color   core.Color
}

// MessageKind identifies a UI message entity.
type MessageKind int

const (
	MessageTitle MessageKind = iota
	MessageGameOver
)

// Message is a centred text overlay owned by a game mode.
type Message struct {
	Kind  MessageKind
	Lines []string
}
