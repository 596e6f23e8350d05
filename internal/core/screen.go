package core

import (
	"strings"
)

// Renderer is the drawing surface the game writes to.
// It is a stateless sink from the game's point of view: cells keep whatever
// was last written until they are overwritten or the screen is cleared.
type Renderer interface {
	Clear()
	SetCell(x, y int, fg, bg Color, glyph rune)
	Print(x, y int, text string)
	PrintCentered(y int, text string)
	PrintColorCentered(y int, fg, bg Color, text string)
	DrawBorderBox(x0, y0, x1, y1 int, fg, bg Color)
}

// Cell is a single character position with its colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Default colors used by Print and Clear.
const (
	DefaultFg = ColorWhite
	DefaultBg = ColorBlack
)

var blankCell = Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// Screen is the renderer the platform hands to the game.
var _ Renderer = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// SetCell places a glyph with explicit colors at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, fg, bg Color, glyph rune) {
	if !s.bounds().Contains(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: glyph, Fg: fg, Bg: bg}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.bounds().Contains(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// Print writes text in the default colors starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) Print(x, y int, text string) {
	s.printColor(x, y, DefaultFg, DefaultBg, text)
}

// PrintCentered writes text centered horizontally on row y.
func (s *Screen) PrintCentered(y int, text string) {
	s.PrintColorCentered(y, DefaultFg, DefaultBg, text)
}

// PrintColorCentered writes colored text centered horizontally on row y.
func (s *Screen) PrintColorCentered(y int, fg, bg Color, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.printColor(x, y, fg, bg, text)
}

func (s *Screen) printColor(x, y int, fg, bg Color, text string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, fg, bg, r)
		i++
	}
}

// DrawBorderBox draws a box outline from (x0, y0) to (x1, y1) inclusive using
// box-drawing characters, and blanks its interior.
func (s *Screen) DrawBorderBox(x0, y0, x1, y1 int, fg, bg Color) {
	r := RectFromCorners(x0, y0, x1, y1)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			s.SetCell(x, y, fg, bg, ' ')
		}
	}

	// Corners
	s.SetCell(r.X, r.Y, fg, bg, '┌')
	s.SetCell(r.Right()-1, r.Y, fg, bg, '┐')
	s.SetCell(r.X, r.Bottom()-1, fg, bg, '└')
	s.SetCell(r.Right()-1, r.Bottom()-1, fg, bg, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, fg, bg, '─')
		s.SetCell(x, r.Bottom()-1, fg, bg, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, fg, bg, '│')
		s.SetCell(r.Right()-1, y, fg, bg, '│')
	}
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
