package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// physicsPass integrates every entity with a Transform and Velocity using
// semi-implicit Euler: gravity updates the velocity first, then the position
// moves with the updated velocity. Gravity applies only during InGame.
func physicsPass(ctx *Context) error {
	w := ctx.World
	dt := ctx.DT
	falling := ctx.Machine.Mode() == ModeInGame
	maxVY := ctx.Config.Physics.MaxVelocityY

	for _, e := range w.Query(w.Transforms, w.Velocities) {
		t := w.Transforms.Ptr(e)
		v := w.Velocities.Ptr(e)

		if g, ok := w.Gravities.Get(e); ok && falling {
			v.VY = core.ClampF(v.VY-g.Magnitude*dt, -maxVY, maxVY)
		}

		t.X += v.VX * dt
		t.Y += v.VY * dt
	}
	return nil
}
