package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// seqRand replays a fixed list of draws, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type recordAudio struct {
	played []Sound
}

func (a *recordAudio) Play(s Sound) {
	a.played = append(a.played, s)
}

func (a *recordAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

var testWindow = StaticWindow{W: 640, H: 480}

func newTestSim(t *testing.T, cfg config.FlappyConfig, win Window) (*Simulation, *recordAudio) {
	t.Helper()
	audio := &recordAudio{}
	s, err := New(cfg, win, audio, &seqRand{vals: []float64{0.5}})
	require.NoError(t, err)
	return s, audio
}

// enterGame moves the simulation straight into InGame.
func enterGame(t *testing.T, s *Simulation) {
	t.Helper()
	ok, err := s.ctx.Machine.Request(ModeInGame)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, s.ctx.Machine.Apply())
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func player(t *testing.T, s *Simulation) (ecs.Entity, *component.Transform, *component.Velocity) {
	t.Helper()
	w := s.World()
	e, ok := w.Player()
	require.True(t, ok)
	return e, w.Transforms.Ptr(e), w.Velocities.Ptr(e)
}

// addPipe places a stationary pipe centred at (x, y).
func addPipe(s *Simulation, x, y float64) ecs.Entity {
	w := s.World()
	pc := s.ctx.Config.Pipes
	e := w.CreateEntity()
	w.Transforms.Set(e, component.Transform{X: x, Y: y})
	w.Velocities.Set(e, component.Velocity{})
	w.Sprites.Set(e, component.Sprite{W: pc.Width, H: pc.Height})
	w.Pipes.Set(e, component.Pipe{})
	w.Despawnables.Set(e, component.Despawnable{})
	return e
}

// pendingMode returns the queued target mode of m, if any.
func pendingMode(m *Machine) (Mode, bool) {
	return m.next, m.hasPending
}
