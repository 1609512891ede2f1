package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Rows below the playfield reserved for the help footer.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Muter is implemented by audio players that can be silenced at runtime.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// configured is implemented by games that expose their effective config.
type configured interface {
	Config() config.FlappyConfig
}

// Options holds the collaborators of a game model. All fields are optional.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Muter      Muter
	Clock      core.Clock // Fixed frame deltas; nil uses the wall clock
	Record     bool       // Save every finished round as a replayable run
	QuitOnBack bool // Exit the program on the back key instead of flagging it
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	configHash string
	keys       GameKeyMap
	help       help.Model
	tracker    *core.InputTracker
	recorder   *replay.Recorder
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel resets the game for cfg and wraps it in a model. cfg.ScreenH is
// the full terminal height; the footer is taken from it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		opts:    opts,
		logger:  logger,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		tracker: core.NewInputTracker(),
	}
	if err := game.Reset(m.gameConfig()); err != nil {
		return Model{}, fmt.Errorf("tui: reset %s: %w", game.ID(), err)
	}
	m.gameState = game.State()

	if c, ok := game.(configured); ok {
		hash, err := config.Fingerprint(c.Config())
		if err != nil {
			return Model{}, err
		}
		m.configHash = hash
	}
	if opts.Record {
		m.recorder = replay.NewRecorder()
	}
	return m, nil
}

func playRows(rows int) int {
	return max(rows-footerRows, 1)
}

// gameConfig returns the runtime config the game sees: the terminal minus
// the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playRows(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are only collected here;
// the next tick turns them into an input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.opts.QuitOnBack {
			return m, tea.Quit
		}

	case core.ActionFlap:
		m.tracker.Hold(core.ActionFlap)

	case core.ActionConfirm:
		m.tracker.Hold(core.ActionConfirm)

	default:
		if key.Matches(msg, m.keys.Mute) && m.opts.Muter != nil {
			m.opts.Muter.SetMuted(!m.opts.Muter.Muted())
		}
	}
	return m, nil
}

// handleResize processes window resize events. A resize before the first
// frame restarts the game at the new size; later the game keeps running and
// any recording is dropped, since replays assume a fixed window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width

	if m.lastTick.IsZero() {
		if err := m.game.Reset(m.gameConfig()); err != nil {
			return m.fail(err)
		}
		return m, nil
	}

	m.game.Resize(msg.Width, playRows(msg.Height))
	if m.recorder != nil {
		m.logger.Warn("terminal resized, recording discarded",
			"game", m.game.ID(), "frames", m.recorder.Len())
		m.recorder = nil
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last
// tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	var dt float64
	if m.opts.Clock != nil {
		dt = m.opts.Clock.DeltaSeconds()
	} else {
		dt = frameDelta(m.lastTick, now, m.config.TickRate)
	}
	dt = replay.Quantize(dt)
	m.lastTick = now

	in := m.tracker.Frame()
	if m.recorder != nil {
		m.recorder.Record(dt, in)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(dt, in)
	if result.Err != nil {
		return m.fail(result.Err)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.roundOver()
	}

	return m, tickCmd(m.config.TickRate)
}

// fail stops the program on a fatal simulation error.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("simulation stopped", "game", m.game.ID(), "err", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// roundOver saves the run so far when recording.
func (m Model) roundOver() {
	if m.opts.Store == nil || m.recorder == nil {
		return
	}

	gc := m.gameConfig()
	id, err := m.opts.Store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Seed:       gc.Seed,
		ScreenW:    gc.ScreenW,
		ScreenH:    gc.ScreenH,
		ConfigHash: m.configHash,
		FrameCount: m.recorder.Len(),
		Score:      m.gameState.Score,
		Frames:     replay.Encode(m.recorder.Frames()),
	})
	if err != nil {
		m.logger.Warn("run not saved", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score, "frames", m.recorder.Len())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the fatal simulation error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts a Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
