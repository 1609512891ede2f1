package flappy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id, registry.Env{})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	fg := g.(*Game)
	if err := fg.Reset(testRuntime(12345)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return fg
}

func pressed(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Press(a)
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
	}

	quick := newGame(t, "flappy_quick")
	if quick.Config().Rules.Restart != config.RestartDirect {
		t.Errorf("flappy_quick restart = %q", quick.Config().Rules.Restart)
	}
	menu := newGame(t, "flappy")
	if menu.Config().Rules.Restart != config.RestartMenu {
		t.Errorf("flappy restart = %q", menu.Config().Rules.Restart)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, uint64) {
		g := newGame(t, "flappy")
		g.Step(1.0/60, pressed(core.ActionConfirm))

		var state core.GameState
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Press(core.ActionFlap)
			}
			result := g.Step(1.0/60, in)
			if result.Err != nil {
				t.Fatalf("Step() failed: %v", result.Err)
			}
			state = result.State
			if state.GameOver {
				break
			}
		}
		return state, g.Simulation().Frames()
	}

	s1, f1 := run()
	s2, f2 := run()
	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if f1 != f2 {
		t.Errorf("Determinism failed: frame counts differ. Run1=%d, Run2=%d", f1, f2)
	}
}

func TestGameFallsToGameOver(t *testing.T) {
	g := newGame(t, "flappy")
	g.Step(1.0/60, pressed(core.ActionConfirm))
	if g.State().Mode != sim.ModeInGame.String() {
		t.Fatalf("expected InGame after confirm, got %s", g.State().Mode)
	}

	// With no flaps the bird falls onto the ground within a few seconds
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(1.0/60, core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("bird should have hit the ground")
	}
}

func TestCellWindow(t *testing.T) {
	w := &CellWindow{World: config.DefaultFlappyConfig().World}
	if _, _, ok := w.Size(); ok {
		t.Error("window without cells should be unavailable")
	}

	w.Resize(80, 24)
	width, height, ok := w.Size()
	if !ok || width != 640 || height != 384 {
		t.Errorf("Size() = %g x %g (%v), expected 640 x 384", width, height, ok)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New(Variants[0], registry.Env{})
	result := g.Step(1.0/60, core.NewInputFrame())
	if result.Err != nil {
		t.Errorf("Step before Reset should be a no-op, got %v", result.Err)
	}
	g.Render(core.NewScreen(10, 5))
}

func TestRenderMenu(t *testing.T) {
	g := newGame(t, "flappy")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "F L A P P Y") {
		t.Error("menu should show the title message")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if screen.Get(0, 23) == ' ' {
		t.Error("bottom row should be ground")
	}
}

func TestRenderPlayerAndPipes(t *testing.T) {
	g := newGame(t, "flappy")
	g.Step(1.0/60, pressed(core.ActionConfirm))

	// Hover until the first pipe pair is on screen
	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%12 == 0 {
			in.Press(core.ActionFlap)
		}
		g.Step(1.0/60, in)
	}
	if g.State().GameOver {
		t.Skip("bird crashed before pipes arrived")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, BirdBody) {
		t.Error("player should be drawn")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("pipes should be drawn")
	}
}

func TestRenderGameOverShowsScore(t *testing.T) {
	g := newGame(t, "flappy_quick")
	g.Step(1.0/60, pressed(core.ActionConfirm))
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(1.0/60, core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "enter to retry") {
		t.Errorf("game over box missing:\n%s", out)
	}
}

func TestBirdHead(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '>'},
		{0.5, '/'},
		{-1.2, '\\'},
	}
	for _, tc := range tests {
		if got := birdHead(tc.rotation); got != tc.expected {
			t.Errorf("birdHead(%g) = %q, expected %q", tc.rotation, got, tc.expected)
		}
	}
}

func TestSpan(t *testing.T) {
	// A 40-unit pipe centred on a cell boundary covers 5 cells of 8 units
	start, end := span(100, 140, 8, 80)
	if end-start != 5 {
		t.Errorf("span covers %d cells, expected 5", end-start)
	}
	start, end = span(-50, -10, 8, 80)
	if start != 0 || end != 0 {
		t.Errorf("off-screen span = [%d, %d), expected empty", start, end)
	}
}

func TestGameLogsUnavailableWindow(t *testing.T) {
	var buf bytes.Buffer
	g, err := registry.Create("flappy", registry.Env{Logger: log.New(&buf)})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("sized reset should not warn, logged %q", buf.String())
	}

	g.Resize(0, 24)
	if !strings.Contains(buf.String(), "window unavailable") {
		t.Errorf("expected a window warning, logged %q", buf.String())
	}
	if !strings.Contains(buf.String(), "game=flappy") {
		t.Errorf("log lines should carry the game id, logged %q", buf.String())
	}
}
