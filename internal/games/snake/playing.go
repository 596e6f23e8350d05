package snake

import (
	"strconv"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameEvent is the outcome of a Playing or Paused tick.
type GameEvent int

const (
	EventContinue GameEvent = iota
	EventEnd
	EventPause
)

func (e GameEvent) String() string {
	switch e {
	case EventContinue:
		return "continue"
	case EventEnd:
		return "end"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Playing is a live game.
type Playing struct {
	clock core.Clock
	rng   Rand

	difficulty   config.Difficulty
	moveInterval time.Duration
	foodLifetime time.Duration
	penalty      int

	start         time.Time
	lastMove      time.Time
	foodSpawnTime time.Time

	head      core.Point
	tail      *Tail
	food      core.Point
	direction Direction
	score     int
}

// NewPlaying starts a fresh game at the given difficulty.
func NewPlaying(d config.Difficulty, clock core.Clock, rng Rand) *Playing {
	now := clock.Now()
	p := &Playing{
		clock:         clock,
		rng:           rng,
		difficulty:    d,
		moveInterval:  d.SnakeMoveInterval(),
		foodLifetime:  d.FoodLifetime(),
		penalty:       config.Active().FoodExpiryPenalty,
		start:         now,
		lastMove:      now,
		foodSpawnTime: now,
		head:          startPos,
		tail:          NewTail(0),
		direction:     DirRight,
	}
	p.food = p.newFoodPosition()
	return p
}

// Difficulty returns the level this game is played at.
func (p *Playing) Difficulty() config.Difficulty { return p.difficulty }

// Score returns the current score. It goes negative when pellets expire.
func (p *Playing) Score() int { return p.score }

// Head returns the head position.
func (p *Playing) Head() core.Point { return p.head }

// Food returns the food position.
func (p *Playing) Food() core.Point { return p.food }

// Direction returns the current heading.
func (p *Playing) Direction() Direction { return p.direction }

// Tail returns the body segments.
func (p *Playing) Tail() *Tail { return p.tail }

// SetupScreen draws the play field chrome: border box and score label.
func SetupScreen(r core.Renderer) {
	r.Clear()
	r.DrawBorderBox(0, 0, Width-1, Height-1, core.ColorWhite, core.ColorBlack)
	r.Print(Width-ScoreIndicatorOffset, 0, "[Score:     ]")
}

// Tick advances the game by one frame.
//
// Collision and border checks run every frame against the current head, while
// the head itself only moves once per move interval.
func (p *Playing) Tick(r core.Renderer, in core.KeyFrame) GameEvent {
	if p.head == p.food {
		p.score += foodPoints
		p.respawnFood()
		p.tail.IncLength()
	}

	if p.tail.Contains(p.head) {
		return EventEnd
	}

	if isBorder(p.head) {
		return EventEnd
	}

	p.checkFoodExpiry(r)

	p.drawScore(r)
	r.SetCell(p.food.X, p.food.Y, foodColor, emptyColor, foodGlyph)

	if key, ok := in.Pressed(); ok {
		if key == core.KeyEscape {
			return EventPause
		}
		if dir, ok := directionForKey(key); ok && dir != p.direction.Opposite() {
			p.direction = dir
		}
	}

	p.drawTail(r, emptyColor, blankGlyph)
	p.move(r)
	r.SetCell(p.head.X, p.head.Y, snakeColor, emptyColor, headGlyph)
	p.drawTail(r, snakeColor, tailGlyph)

	return EventContinue
}

// Result snapshots the final score and the time played so far.
func (p *Playing) Result() *GameOver {
	return &GameOver{
		finalScore: p.score,
		playtime:   p.clock.Now().Sub(p.start),
		difficulty: p.difficulty,
	}
}

// move advances the head one cell if the move interval has elapsed.
func (p *Playing) move(r core.Renderer) {
	now := p.clock.Now()
	if now.Sub(p.lastMove) < p.moveInterval {
		return
	}

	r.SetCell(p.head.X, p.head.Y, snakeColor, emptyColor, blankGlyph)

	if p.tail.Len() > 0 {
		p.tail.Push(p.head)
	}
	p.head = p.direction.Step(p.head)

	r.SetCell(p.head.X, p.head.Y, snakeColor, emptyColor, headGlyph)
	p.lastMove = now
}

// checkFoodExpiry replaces a pellet that outlived its lifetime and applies the penalty.
func (p *Playing) checkFoodExpiry(r core.Renderer) {
	if p.clock.Now().Sub(p.foodSpawnTime) < p.foodLifetime {
		return
	}

	r.SetCell(p.food.X, p.food.Y, emptyColor, emptyColor, blankGlyph)

	p.score -= p.penalty
	p.respawnFood()
}

func (p *Playing) respawnFood() {
	p.food = p.newFoodPosition()
	p.foodSpawnTime = p.clock.Now()
}

// newFoodPosition draws a cell uniformly from the inner field, away from the border.
func (p *Playing) newFoodPosition() core.Point {
	return core.Point{
		X: foodMin + p.rng.Intn(Width-1-foodMin),
		Y: foodMin + p.rng.Intn(Height-1-foodMin),
	}
}

func (p *Playing) drawScore(r core.Renderer) {
	x := Width - ScoreIndicatorOffset + 8
	r.Print(x, 0, "    ")
	r.Print(x, 0, strconv.Itoa(p.score))
}

func (p *Playing) drawTail(r core.Renderer, fg core.Color, glyph rune) {
	if p.tail.Len() == 0 {
		return
	}
	for pt := range p.tail.All() {
		r.SetCell(pt.X, pt.Y, fg, emptyColor, glyph)
	}
}

// isBorder reports whether p lies on the outermost rows or columns.
func isBorder(p core.Point) bool {
	return p.X == 0 || p.X == Width-1 || p.Y == 0 || p.Y == Height-1
}
