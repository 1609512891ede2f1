// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and recording of runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the wall-clock delta of one tick so a stalled
// terminal does not make the bird tunnel through pipes.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, capped at maxFrameDelta.
// The first tick uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	return min(d, maxFrameDelta).Seconds()
}
