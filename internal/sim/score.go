package sim

// scorePass awards a point for each gated pipe whose right edge has moved
// behind the player.
func scorePass(ctx *Context) error {
	_, p, ok := ctx.playerParts()
	if !ok {
		return nil
	}

	w := ctx.World
	for _, e := range w.Query(w.ScoreGates, w.Transforms, w.Sprites) {
		gate := w.ScoreGates.Ptr(e)
		if gate.Passed {
			continue
		}
		t, _ := w.Transforms.Get(e)
		s, _ := w.Sprites.Get(e)
		if s.Box(t).Right() < p.T.X {
			gate.Passed = true
			ctx.Score++
			ctx.Audio.Play(SoundPoint)
		}
	}
	return nil
}
