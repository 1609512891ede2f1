package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// parallaxPass scrolls every layer left at its speed and wraps its x into
// (-LoopX/2, LoopX/2]. Advancing by LoopX/Speed seconds returns x to start.
func parallaxPass(ctx *Context) error {
	w := ctx.World
	for _, e := range w.Query(w.Transforms, w.Parallaxes) {
		p, _ := w.Parallaxes.Get(e)
		if p.LoopX <= 0 {
			continue
		}
		t := w.Transforms.Ptr(e)
		t.X = wrapParallax(t.X, p.Speed*ctx.DT, p.LoopX)
	}
	return nil
}

// wrapParallax moves x left by dist inside a band of width loop.
func wrapParallax(x, dist, loop float64) float64 {
	half := loop / 2
	return -core.EuclidMod(-(x-half)+dist, loop) + half
}
