package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	backKey  = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T, gameID string, opts Options) Model {
	t.Helper()
	game, err := registry.Create(gameID, registry.Env{})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", gameID, err)
	}
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}, opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	if got := frameDelta(time.Time{}, base, 60); got != 1.0/60 {
		t.Errorf("first frame delta = %g, expected 1/60", got)
	}
	if got := frameDelta(base, base.Add(20*time.Millisecond), 60); got != 0.02 {
		t.Errorf("frame delta = %g, expected 0.02", got)
	}
	if got := frameDelta(base, base.Add(3*time.Second), 60); got != maxFrameDelta.Seconds() {
		t.Errorf("stalled frame delta = %g, expected cap %g", got, maxFrameDelta.Seconds())
	}
	if got := frameDelta(base, base.Add(-time.Second), 60); got != 0 {
		t.Errorf("backwards clock delta = %g, expected 0", got)
	}
}

func TestModelRecordsRoundAsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, "flappy_quick", Options{Store: store, Record: true})
	m = update(t, m, enterKey)

	base := time.Unix(1000, 0)
	for i := 0; i < 1000 && !m.gameState.GameOver; i++ {
		if i == 30 {
			m = update(t, m, spaceKey)
		}
		// Uneven tick spacing, as from a busy terminal
		m = update(t, m, TickMsg(base.Add(time.Duration(i)*17*time.Millisecond+time.Duration(i%4)*time.Millisecond)))
	}
	if !m.gameState.GameOver {
		t.Fatal("bird should have crashed without further flaps")
	}

	runs, err := store.ListRuns("flappy_quick", 10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].FrameCount != m.recorder.Len() || runs[0].ScreenH != 24 || runs[0].Seed != 7 {
		t.Errorf("Unexpected run metadata: %+v", runs[0])
	}
	if runs[0].ConfigHash == "" {
		t.Error("run should carry a config fingerprint")
	}

	run, err := store.GetRun(runs[0].ID)
	if err != nil || run == nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	frames, err := replay.Decode(run.Frames)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	game, _ := registry.Create(run.GameID, registry.Env{})
	state, err := replay.Run(game, core.RuntimeConfig{
		ScreenW: run.ScreenW,
		ScreenH: run.ScreenH,
		Seed:    run.Seed,
	}, frames)
	if err != nil {
		t.Fatalf("replay.Run() failed: %v", err)
	}
	if state != m.gameState {
		t.Errorf("Replay diverged: got %+v, played %+v", state, m.gameState)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, "flappy", Options{Record: true})

	// Before the first frame a resize just restarts at the new size
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.recorder == nil {
		t.Fatal("resize before the first frame should keep the recording")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, TickMsg(time.Unix(1000, 0)))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.recorder == nil {
		t.Error("same-size resize should keep the recording")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 31})
	if m.recorder != nil {
		t.Error("resize mid-game should discard the recording")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, "flappy", Options{QuitOnBack: true})
	m = update(t, m, backKey)
	if !m.BackToMenu() {
		t.Error("esc should request the picker")
	}

	m = newTestModel(t, "flappy", Options{})
	m = update(t, m, enterKey)
	m = update(t, m, TickMsg(time.Unix(1000, 0)))
	if m.gameState.Mode != "InGame" {
		t.Errorf("enter should start a round, mode is %s", m.gameState.Mode)
	}

	m = update(t, m, quitKey)
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

type fakeMuter struct{ muted bool }

func (f *fakeMuter) SetMuted(muted bool) { f.muted = muted }
func (f *fakeMuter) Muted() bool         { return f.muted }

func TestModelMuteToggle(t *testing.T) {
	muter := &fakeMuter{}
	m := newTestModel(t, "flappy", Options{Muter: muter})

	mKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}
	m = update(t, m, mKey)
	if !muter.muted {
		t.Error("m should mute")
	}
	update(t, m, mKey)
	if muter.muted {
		t.Error("second m should unmute")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 {
		t.Fatalf("Expected both variants in the menu, got %d", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(enterKey)
	result := next.(MenuModel).Result()
	if result.Quit || result.GameID != m.items[1].GameID {
		t.Errorf("Expected %q selected, got %+v", m.items[1].GameID, result)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsRuns {
		t.Error("tab should open the runs browser")
	}
}

func TestModelFixedClock(t *testing.T) {
	m := newTestModel(t, "flappy", Options{Clock: core.FixedClock(0.05)})
	m = update(t, m, enterKey)

	// Tick timestamps are ignored under a fixed clock
	base := time.Unix(1000, 0)
	m = update(t, m, TickMsg(base))
	m = update(t, m, TickMsg(base.Add(time.Hour)))

	game := m.game.(interface{ Simulation() *sim.Simulation })
	if frames := game.Simulation().Frames(); frames != 2 {
		t.Errorf("Frames() = %d, expected 2", frames)
	}
	if m.gameState.GameOver {
		t.Error("a 0.05s step must not be stretched to the wall-clock gap")
	}
}

func TestRunsBrowserListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: "flappy", ScreenW: 80, ScreenH: 24, FrameCount: 3, Score: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewRunsModel(store, 80, 24)
	if m.games[m.gameCursor].ID != "flappy" {
		t.Fatalf("Expected flappy listed first, got %q", m.games[m.gameCursor].ID)
	}
	if len(m.rows) != 1 || m.rows[0][1] != "2" || m.rows[0][3] != "80x24" {
		t.Errorf("Unexpected rows: %v", m.rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if rows := next.(RunsModel).rows; len(rows) != 0 {
		t.Errorf("flappy_quick should have no runs, got %v", rows)
	}

	next, _ = next.Update(backKey)
	if !next.(RunsModel).IsGoingBack() {
		t.Error("esc should return to the picker")
	}
}

func TestSessionMenuHidesRuns(t *testing.T) {
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, sessionEnv{
		logger: log.New(io.Discard),
	})
	if strings.Contains(m.View(), "runs") {
		t.Errorf("session picker should not offer the runs browser:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm := next.(SessionModel)
	if cmd != nil || sm.quitting || sm.gameModel != nil {
		t.Error("tab should do nothing in a session")
	}

	next, _ = sm.Update(enterKey)
	if next.(SessionModel).gameModel == nil {
		t.Error("enter should start the selected variant")
	}

	if !strings.Contains(NewMenuModel(core.RuntimeConfig{ScreenW: 80}).View(), "runs") {
		t.Error("local picker should still offer the runs browser")
	}
}
