package snake

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuItem is a selectable row of the main menu.
type MenuItem int

const (
	ItemPlay MenuItem = iota
	ItemDifficulty
)

// MenuEvent is the outcome of a main menu tick.
type MenuEvent int

const (
	MenuStay MenuEvent = iota
	MenuPlay
	MenuQuit
)

// MainMenu lets the player pick a difficulty and start a game.
//
// Keys are edge-triggered: a key acts once, then is ignored until a frame
// without it (or with a different key) has been seen.
type MainMenu struct {
	selected   MenuItem
	difficulty config.Difficulty
	lastKey    core.Key
	version    string
}

// NewMainMenu creates the menu in its default state.
func NewMainMenu(version string) *MainMenu {
	return &MainMenu{
		selected:   ItemPlay,
		difficulty: config.DefaultDifficulty,
		version:    version,
	}
}

// newRestartMenu creates a default menu that treats Enter as already held,
// so the key press that left the game over screen does not start a new game.
func newRestartMenu(version string) *MainMenu {
	m := NewMainMenu(version)
	m.lastKey = core.KeyEnter
	return m
}

// Selected returns the highlighted row.
func (m *MainMenu) Selected() MenuItem { return m.selected }

// Difficulty returns the chosen difficulty.
func (m *MainMenu) Difficulty() config.Difficulty { return m.difficulty }

// Tick redraws the menu and applies at most one key.
func (m *MainMenu) Tick(r core.Renderer, in core.KeyFrame) MenuEvent {
	r.Clear()
	m.draw(r)

	key, ok := in.Pressed()
	if !ok {
		m.lastKey = core.KeyNone
		return MenuStay
	}
	if key == m.lastKey {
		return MenuStay
	}

	switch {
	case key == core.KeyLeft && m.selected == ItemDifficulty:
		m.difficulty.Decrease()
	case key == core.KeyRight && m.selected == ItemDifficulty:
		m.difficulty.Increase()
	case key == core.KeyUp && m.selected == ItemDifficulty:
		m.selected = ItemPlay
	case key == core.KeyDown && m.selected == ItemPlay:
		m.selected = ItemDifficulty
	case key == core.KeyEnter && m.selected == ItemPlay:
		m.lastKey = core.KeyNone
		return MenuPlay
	case key == core.KeyEscape:
		return MenuQuit
	}
	m.lastKey = key
	return MenuStay
}

func (m *MainMenu) draw(r core.Renderer) {
	play := "Play"
	if m.selected == ItemPlay {
		play = "> Play <"
	}
	r.PrintCentered(Height/2-5, play)

	name := m.difficulty.String()
	if m.selected == ItemDifficulty {
		name = "< " + name + " >"
	}
	r.PrintCentered(Height/2+5, "Difficulty: "+name)

	r.PrintCentered(Height-1, "Use [UP], [DOWN] and [ENTER] to change and set selection.")

	if m.version != "" {
		v := "v" + m.version
		r.Print(Width-len(v), 0, v)
	}

	for i, line := range strings.Split(m.difficulty.Description(), "\n") {
		r.PrintCentered(Height/2+7+i*2, line)
	}
}
