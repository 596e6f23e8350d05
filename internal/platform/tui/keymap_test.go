package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Key
		wantQuit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{"w", runeKey('w'), core.KeyW, false},
		{"shifted A", runeKey('A'), core.KeyA, false},
		{"s", runeKey('s'), core.KeyS, false},
		{"d", runeKey('d'), core.KeyD, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"unbound", runeKey('x'), core.KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewKeyFrame()

	km.MapKeyToFrame(runeKey('x'), &frame)
	if frame.Len() != 0 {
		t.Errorf("unbound key should not be collected, frame has %d keys", frame.Len())
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if k, ok := frame.Pressed(); !ok || k != core.KeyDown {
		t.Errorf("Pressed() = (%v, %v), want the first key (down)", k, ok)
	}

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should report quit")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	short := km.ShortHelp()
	if len(short) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(short))
	}
	for _, b := range short {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("FullHelp() lists %d bindings, expected 11", total)
	}
}
