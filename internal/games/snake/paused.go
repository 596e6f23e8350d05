package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Paused holds a suspended game. The game is not ticked while paused, so its
// snake does not move.
type Paused struct {
	game *Playing
}

// Game returns the suspended game.
func (p *Paused) Game() *Playing { return p.game }

// Tick reports EventContinue when Enter resumes the game, EventPause otherwise.
func (p *Paused) Tick(in core.KeyFrame) GameEvent {
	if key, ok := in.Pressed(); ok && key == core.KeyEnter {
		return EventContinue
	}
	return EventPause
}

// drawPausedScreen replaces the play field with the pause notice.
func drawPausedScreen(r core.Renderer) {
	r.Clear()
	r.PrintColorCentered(Height/2-1, core.ColorOrange, core.ColorBlack, "Paused")
	r.PrintCentered(Height/2, "Press [Enter] to resume game.")
}
