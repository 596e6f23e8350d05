package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Play field dimensions. The outermost rows and columns hold the border.
const (
	Width  = 100
	Height = 56
)

// ScoreIndicatorOffset is the distance of the score box from the right edge.
const ScoreIndicatorOffset = 15

// foodPoints is the score gained per pellet eaten.
const foodPoints = 1

// Food spawns in [foodMin, Width-1) x [foodMin, Height-1).
const foodMin = 2

// Starting position of a new snake.
var startPos = core.Point{X: 5, Y: 5}

// Glyphs and colors of the play field.
const (
	headGlyph  = '@'
	tailGlyph  = 'x'
	foodGlyph  = 'o'
	blankGlyph = ' '

	snakeColor = core.ColorGreen
	foodColor  = core.ColorRed
	emptyColor = core.ColorBlack
)
