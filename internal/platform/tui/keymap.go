package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the bindings the game understands.
// Letter keys stay distinct from arrows; the game decides what they share.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	W      key.Binding
	A      key.Binding
	S      key.Binding
	D      key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		W:      key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "up")),
		A:      key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "left")),
		S:      key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "down")),
		D:      key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "right")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause/back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Enter, km.Escape, km.Quit}
}

// FullHelp returns all bindings, grouped into columns.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.W, km.A, km.S, km.D},
		{km.Enter, km.Escape, km.Quit},
	}
}

// MapKey translates a key message to a game key.
// Returns core.KeyNone for unbound keys and whether it's a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.Right):
		return core.KeyRight, false
	case key.Matches(msg, km.W):
		return core.KeyW, false
	case key.Matches(msg, km.A):
		return core.KeyA, false
	case key.Matches(msg, km.S):
		return core.KeyS, false
	case key.Matches(msg, km.D):
		return core.KeyD, false
	case key.Matches(msg, km.Enter):
		return core.KeyEnter, false
	case key.Matches(msg, km.Escape):
		return core.KeyEscape, false
	}
	return core.KeyNone, false
}

// MapKeyToFrame adds the key in msg to frame.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.KeyFrame) bool {
	k, isQuit := km.MapKey(msg)
	if k != core.KeyNone {
		frame.Set(k)
	}
	return isQuit
}
