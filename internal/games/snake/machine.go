// Package snake implements the snake game: the screen state machine and the
// per-tick simulation of a running game. It draws through core.Renderer and
// reads keys from core.KeyFrame; the platform owns the frame loop.
package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Screen is one mode of the game: *MainMenu, *Playing, *Paused or *GameOver.
type Screen interface {
	isScreen()
}

func (*MainMenu) isScreen() {}
func (*Playing) isScreen()  {}
func (*Paused) isScreen()   {}
func (*GameOver) isScreen() {}

// Recorder keeps the results of finished games.
type Recorder interface {
	// RecordGame stores a result and returns the best score recorded for
	// the same difficulty, this result included.
	RecordGame(d config.Difficulty, score int, playtime time.Duration) (best int, err error)
}

// Options configures a Machine. Zero values select the defaults.
type Options struct {
	Clock   core.Clock  // Defaults to the wall clock
	Rand    Rand        // Defaults to a time-seeded generator
	Logger  *log.Logger // Defaults to a discarding logger
	Scores  Recorder    // Optional
	Version string      // Shown in the menu corner
}

// Machine owns the current screen and applies transitions between screens.
// It starts at the main menu and never reaches a terminal state; leaving is
// up to the caller once Tick reports quit.
type Machine struct {
	current Screen
	clock   core.Clock
	rng     Rand
	log     *log.Logger
	scores  Recorder
	version string
}

// NewMachine creates a machine showing the main menu.
func NewMachine(opts Options) *Machine {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = NewRand()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Machine{
		current: NewMainMenu(opts.Version),
		clock:   opts.Clock,
		rng:     opts.Rand,
		log:     opts.Logger,
		scores:  opts.Scores,
		version: opts.Version,
	}
}

// Current returns the active screen.
func (m *Machine) Current() Screen {
	return m.current
}

// Tick runs one frame of the active screen and applies its transition.
// It returns true when the player asked to leave from the main menu.
func (m *Machine) Tick(r core.Renderer, in core.KeyFrame) (quit bool) {
	switch s := m.current.(type) {
	case *MainMenu:
		switch s.Tick(r, in) {
		case MenuPlay:
			m.current = NewPlaying(s.Difficulty(), m.clock, m.rng)
			SetupScreen(r)
			m.log.Info("game started", "difficulty", s.Difficulty())
		case MenuQuit:
			m.log.Info("quit from main menu")
			return true
		}

	case *Playing:
		switch s.Tick(r, in) {
		case EventEnd:
			m.current = m.finish(s)
		case EventPause:
			m.current = &Paused{game: s}
			drawPausedScreen(r)
			m.log.Debug("game paused", "score", s.Score())
		}

	case *Paused:
		if s.Tick(in) == EventContinue {
			m.current = s.game
			SetupScreen(r)
			m.log.Debug("game resumed", "score", s.game.Score())
		}

	case *GameOver:
		if s.Tick(r, in) {
			m.current = newRestartMenu(m.version)
			m.log.Debug("restart")
		}
	}
	return false
}

// finish snapshots a game that just ended and records its result.
func (m *Machine) finish(p *Playing) *GameOver {
	over := p.Result()
	m.log.Info("game over",
		"difficulty", over.difficulty,
		"score", over.finalScore,
		"playtime", over.playtime.Round(time.Millisecond),
	)

	if m.scores != nil {
		best, err := m.scores.RecordGame(over.difficulty, over.finalScore, over.playtime)
		if err != nil {
			m.log.Warn("could not record game", "error", err)
		} else {
			over.sessionBest = best
			over.hasSessionBest = true
		}
	}
	return over
}
