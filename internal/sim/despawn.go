package sim

import "math"

// despawnPass destroys despawnable entities that have scrolled past either
// side of the window by more than the despawn margin.
func despawnPass(ctx *Context) error {
	width, _, ok := ctx.Window.Size()
	if !ok {
		return nil
	}
	limit := width/2 + ctx.Config.Pipes.DespawnMargin

	w := ctx.World
	for _, e := range w.Query(w.Despawnables, w.Transforms) {
		t, _ := w.Transforms.Get(e)
		if math.Abs(t.X) > limit {
			w.DestroyEntity(e)
		}
	}
	return nil
}
