package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// flapPass services at most one queued flap intent by setting the player's
// vertical velocity to the flap velocity, then tilts the player toward its
// direction of travel.
func flapPass(ctx *Context) error {
	_, p, ok := ctx.playerParts()
	if !ok {
		ctx.Flaps.Clear()
		return nil
	}

	phys := ctx.Config.Physics
	if ctx.Flaps.Pop() {
		p.V.VY = phys.FlapVelocityY
		ctx.Audio.Play(SoundFlap)
	}
	p.T.Rotation = core.ClampF(math.Atan2(p.V.VY*ctx.DT, 1), phys.MaxAngleDown, phys.MaxAngleUp)
	return nil
}
