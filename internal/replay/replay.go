package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Recorder collects frames while a game is played.
type Recorder struct {
	frames []Frame
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one step. It returns dt quantized the way it will be
// replayed; live play must step with that value for the replay to match.
func (r *Recorder) Record(dt float64, in core.InputFrame) float64 {
	f := NewFrame(dt, in)
	r.frames = append(r.frames, f)
	return f.Seconds()
}

// Frames returns the recorded frames.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Reset drops every recorded frame.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}

// Quantize rounds dt to the precision a recording stores.
func Quantize(dt float64) float64 {
	return float64(float32(dt))
}

// Run resets the game with rc and steps it through every frame. It returns
// the state after the last frame.
func Run(game registry.Game, rc core.RuntimeConfig, frames []Frame) (core.GameState, error) {
	if err := game.Reset(rc); err != nil {
		return core.GameState{}, fmt.Errorf("replay: reset %s: %w", game.ID(), err)
	}
	state := game.State()
	for i, f := range frames {
		result := game.Step(f.Seconds(), f.Input())
		if result.Err != nil {
			return result.State, fmt.Errorf("replay: frame %d: %w", i, result.Err)
		}
		state = result.State
	}
	return state, nil
}
