package sim

// boundaryPass keeps the player inside the window vertically. Touching the
// ceiling bounces the player back down; reaching the ground ends the round.
// The ceiling is resolved first, so one frame never triggers both.
func boundaryPass(ctx *Context) error {
	_, h, ok := ctx.Window.Size()
	if !ok {
		return nil
	}
	_, p, ok := ctx.playerParts()
	if !ok {
		return nil
	}

	halfH := p.H / 2
	ceiling := h/2 - halfH
	floor := -(h/2 - halfH - ctx.Config.World.GroundHeight)

	switch {
	case p.T.Y > ceiling, p.T.Y == ceiling && p.V.VY > 0:
		if p.V.VY > 0 {
			p.V.VY = -p.V.VY
		}
		p.T.Y = ceiling
	case p.T.Y <= floor:
		return ctx.endRound()
	}
	return nil
}
