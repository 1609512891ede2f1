package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// inputPass turns the frame's input into intents. In game a flap press
// queues a flap; on the menu and game-over screens confirm requests the
// next mode.
func inputPass(ctx *Context) error {
	m := ctx.Machine
	switch m.Mode() {
	case ModeInGame:
		if ctx.Input.JustPressed(core.ActionFlap) {
			ctx.Flaps.Push()
		}
	case ModeMainMenu:
		if ctx.Input.JustPressed(core.ActionConfirm) {
			if _, err := m.Request(ModeInGame); err != nil {
				return err
			}
		}
	case ModeGameOver:
		if ctx.Input.JustPressed(core.ActionConfirm) {
			if _, err := m.Request(m.RestartTarget()); err != nil {
				return err
			}
		}
	}
	return nil
}
