package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Step returns p moved one cell in this direction.
func (d Direction) Step(p core.Point) core.Point {
	switch d {
	case DirUp:
		return p.Add(0, -1)
	case DirDown:
		return p.Add(0, 1)
	case DirLeft:
		return p.Add(-1, 0)
	default:
		return p.Add(1, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionForKey maps movement keys (WASD and arrows) to directions.
func directionForKey(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyW, core.KeyUp:
		return DirUp, true
	case core.KeyA, core.KeyLeft:
		return DirLeft, true
	case core.KeyS, core.KeyDown:
		return DirDown, true
	case core.KeyD, core.KeyRight:
		return DirRight, true
	}
	return DirRight, false
}
