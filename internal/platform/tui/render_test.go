package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Print(1, 0, "hello")
	s.SetCell(3, 1, core.ColorGreen, core.ColorBlack, '@')
	s.SetCell(4, 1, core.ColorGreen, core.ColorBlack, 'x')
	s.SetCell(6, 1, core.ColorRed, core.ColorBlack, 'o')

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 3 lines, got %d", got+1)
	}
	for _, want := range []string{"hello", "@x", "o"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStyleCacheReuse(t *testing.T) {
	c := styleCache{}
	c.style(core.ColorGreen, core.ColorBlack)
	c.style(core.ColorGreen, core.ColorBlack)
	c.style(core.ColorRed, core.ColorBlack)

	if len(c) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(c))
	}
}

func TestEveryColorMapped(t *testing.T) {
	for c := core.ColorBlack; c <= core.ColorOrange; c++ {
		if _, ok := ansiColors[c]; !ok {
			t.Errorf("color %d has no terminal mapping", c)
		}
	}
}
