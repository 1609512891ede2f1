package sim

// collisionPass ends the round on the first pipe overlapping the player's
// hitbox. Pipes are tested in ascending entity order.
func collisionPass(ctx *Context) error {
	_, p, ok := ctx.playerParts()
	if !ok {
		return nil
	}
	player := p.box()

	w := ctx.World
	for _, e := range w.Query(w.Pipes, w.Transforms, w.Sprites) {
		t, _ := w.Transforms.Get(e)
		s, _ := w.Sprites.Get(e)
		if player.Overlaps(s.Box(t)) {
			return ctx.endRound()
		}
	}
	return nil
}
