package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameOver shows the result of a finished game. Its values never change.
type GameOver struct {
	finalScore int
	playtime   time.Duration
	difficulty config.Difficulty

	sessionBest    int
	hasSessionBest bool
}

// FinalScore returns the score the game ended with.
func (g *GameOver) FinalScore() int { return g.finalScore }

// Playtime returns how long the game lasted, pauses included.
func (g *GameOver) Playtime() time.Duration { return g.playtime }

// Difficulty returns the level the game was played at.
func (g *GameOver) Difficulty() config.Difficulty { return g.difficulty }

// Tick redraws the screen and reports whether Enter asked for a restart.
func (g *GameOver) Tick(r core.Renderer, in core.KeyFrame) bool {
	r.Clear()

	r.PrintColorCentered(Height/2, core.ColorBlue, core.ColorBlack, "GAME OVER")
	r.PrintCentered(Height/2+1, fmt.Sprintf("Final score: %d", g.finalScore))
	r.PrintCentered(Height/2+2, "Playtime: "+FormatPlaytime(g.playtime))
	if g.hasSessionBest {
		r.PrintCentered(Height/2+4, fmt.Sprintf("Session best (%s): %d", g.difficulty, g.sessionBest))
	}
	r.PrintCentered(Height-1, "Press [ENTER] to restart the game.")

	key, ok := in.Pressed()
	return ok && key == core.KeyEnter
}

// FormatPlaytime renders d as HH:MM:SS, truncated to whole seconds.
func FormatPlaytime(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
