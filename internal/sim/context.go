package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// Context is the per-simulation state threaded through every pass.
// Passes borrow it for one frame and must not keep references to
// components across frames.
type Context struct {
	World   *ecs.World
	Config  config.FlappyConfig
	Machine *Machine

	// Collaborators
	Window Window
	Audio  Audio
	Rand   Rand

	// Per-frame inputs
	DT    float64
	Input core.InputFrame

	Flaps      *FlapQueue
	SpawnTimer *Timer
	Difficulty *config.DifficultyManager

	Score int
	Ticks int // InGame frames since the round started
}

// endRound requests GameOver and plays the hit sound only when the request
// was accepted.
func (ctx *Context) endRound() error {
	accepted, err := ctx.Machine.Request(ModeGameOver)
	if err != nil {
		return err
	}
	if accepted {
		ctx.Audio.Play(SoundHit)
	}
	return nil
}

// pipeSpeed returns the current leftward pipe speed.
func (ctx *Context) pipeSpeed() float64 {
	return ctx.Difficulty.PipeSpeed(ctx.Config.Pipes.Speed, ctx.Score, ctx.Ticks)
}

// playerView exposes the player's mutable components for one pass.
type playerView struct {
	T     *component.Transform
	V     *component.Velocity
	W, H  float64 // Sprite extents
	Scale float64 // Hitbox scale
}

// box returns the player's collision box.
func (p *playerView) box() core.AABB {
	return core.NewAABB(p.T.X, p.T.Y, p.W, p.H).Scaled(p.Scale)
}

// playerParts returns the player's entity and its mutable components.
// ok is false if there is no player or it lacks a Transform or Velocity.
func (ctx *Context) playerParts() (ecs.Entity, *playerView, bool) {
	w := ctx.World
	e, ok := w.Player()
	if !ok {
		return 0, nil, false
	}
	t := w.Transforms.Ptr(e)
	v := w.Velocities.Ptr(e)
	if t == nil || v == nil {
		return 0, nil, false
	}
	view := &playerView{T: t, V: v}
	if s, ok := w.Sprites.Get(e); ok {
		view.W, view.H = s.W, s.H
	}
	view.Scale = 1
	if hb, ok := w.Hitboxes.Get(e); ok {
		view.Scale = hb.Scale
	}
	return e, view, true
}
