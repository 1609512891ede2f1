package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Mode is the active game mode.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeInGame
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeInGame:
		return "InGame"
	case ModeGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrInvalidTransition is wrapped by requests along an edge the machine does
// not define. It indicates a programming error, not a gameplay outcome.
var ErrInvalidTransition = errors.New("invalid mode transition")

// Action runs on entering or leaving a mode.
type Action func()

// Machine is the game-mode state machine. Requests are queued and applied
// at the end of the frame, so every pass of a frame sees the same mode.
type Machine struct {
	current    Mode
	next       Mode
	hasPending bool
	started    bool

	edges   map[Mode][]Mode
	onEnter map[Mode][]Action
	onExit  map[Mode][]Action
}

// NewMachine builds the edge table for a restart policy. With RestartMenu,
// GameOver leads back to MainMenu; with RestartDirect it leads to InGame.
func NewMachine(restart config.RestartMode) *Machine {
	after := ModeMainMenu
	if restart == config.RestartDirect {
		after = ModeInGame
	}
	return &Machine{
		current: ModeMainMenu,
		edges: map[Mode][]Mode{
			ModeMainMenu: {ModeInGame},
			ModeInGame:   {ModeGameOver},
			ModeGameOver: {after},
		},
		onEnter: make(map[Mode][]Action),
		onExit:  make(map[Mode][]Action),
	}
}

// OnEnter registers an action run each time mode becomes active.
func (m *Machine) OnEnter(mode Mode, fn Action) {
	m.onEnter[mode] = append(m.onEnter[mode], fn)
}

// OnExit registers an action run each time mode is left.
func (m *Machine) OnExit(mode Mode, fn Action) {
	m.onExit[mode] = append(m.onExit[mode], fn)
}

// Start enters the initial mode and runs its enter actions once.
func (m *Machine) Start(mode Mode) {
	m.current = mode
	m.hasPending = false
	m.started = true
	m.run(m.onEnter[mode])
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.current
}

// RestartTarget returns the mode GameOver leads to.
func (m *Machine) RestartTarget() Mode {
	return m.edges[ModeGameOver][0]
}

// CanTransition reports whether the edge from -> to exists.
func (m *Machine) CanTransition(from, to Mode) bool {
	for _, t := range m.edges[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Request queues a transition from the active mode. It returns false when
// another transition is already pending this frame. An undefined edge
// returns an error wrapping ErrInvalidTransition.
func (m *Machine) Request(to Mode) (bool, error) {
	if !m.started {
		return false, fmt.Errorf("sim: %w: machine not started", ErrInvalidTransition)
	}
	if !m.CanTransition(m.current, to) {
		return false, fmt.Errorf("sim: %w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	if m.hasPending {
		return false, nil
	}
	m.next = to
	m.hasPending = true
	return true, nil
}

// Apply performs the pending transition: exit actions of the old mode,
// then enter actions of the new one. It reports whether a transition ran.
func (m *Machine) Apply() bool {
	if !m.hasPending {
		return false
	}
	from, to := m.current, m.next
	m.hasPending = false

	m.run(m.onExit[from])
	m.current = to
	m.run(m.onEnter[to])
	return true
}

func (m *Machine) run(actions []Action) {
	for _, fn := range actions {
		fn()
	}
}
