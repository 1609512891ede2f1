package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, W, Up - flap
	ActionConfirm        // Enter - start / restart from a menu screen
	ActionBack           // B, Escape - leave the game to the variant picker
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Pressed is level state (key currently down); JustPressed holds only the
// actions whose key went down this tick.
type InputFrame struct {
	pressed     map[Action]bool
	justPressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed:     make(map[Action]bool),
		justPressed: make(map[Action]bool),
	}
}

// Press marks an action as held and freshly pressed for this frame.
func (f *InputFrame) Press(a Action) {
	f.init()
	f.pressed[a] = true
	f.justPressed[a] = true
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	f.init()
	f.pressed[a] = true
}

func (f *InputFrame) init() {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	if f.justPressed == nil {
		f.justPressed = make(map[Action]bool)
	}
}

// Pressed reports whether the action's key is currently down.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// JustPressed reports whether the action's key went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.justPressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.pressed)
	clear(f.justPressed)
}

// InputTracker turns successive sets of held actions into frames with
// press edges. A key held across two frames yields one edge only.
type InputTracker struct {
	prev map[Action]bool
	held map[Action]bool
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		prev: make(map[Action]bool),
		held: make(map[Action]bool),
	}
}

// Hold records that the action's key is down during the current frame.
func (t *InputTracker) Hold(a Action) {
	t.held[a] = true
}

// Frame returns the input frame for the current tick and starts the next one.
func (t *InputTracker) Frame() InputFrame {
	f := NewInputFrame()
	for a := range t.held {
		if t.prev[a] {
			f.Hold(a)
		} else {
			f.Press(a)
		}
	}
	t.prev, t.held = t.held, t.prev
	clear(t.held)
	return f
}
