package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansiColors maps core.Color to terminal colors.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorRed:    lipgloss.Color("1"),
	core.ColorGreen:  lipgloss.Color("2"),
	core.ColorBlue:   lipgloss.Color("4"),
	core.ColorWhite:  lipgloss.Color("7"),
	core.ColorOrange: lipgloss.Color("208"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache memoizes one lipgloss style per color pair.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) style(fg, bg core.Color) lipgloss.Style {
	pair := colorPair{fg, bg}
	if st, ok := c[pair]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	if col, ok := ansiColors[fg]; ok {
		st = st.Foreground(col)
	}
	if col, ok := ansiColors[bg]; ok {
		st = st.Background(col)
	}
	c[pair] = st
	return st
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
