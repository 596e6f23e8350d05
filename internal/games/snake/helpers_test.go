package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedRand replays a fixed sequence of values, wrapped into [0, n).
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// newTestGame starts a game whose first pellet lands at (2, 2).
func newTestGame(d config.Difficulty) (*Playing, *fakeClock, *core.Screen) {
	clock := newFakeClock()
	p := NewPlaying(d, clock, &scriptedRand{vals: []int{0}})
	screen := core.NewScreen(Width, Height)
	SetupScreen(screen)
	return p, clock, screen
}

func noKeys() core.KeyFrame {
	return core.NewKeyFrame()
}

func keys(k ...core.Key) core.KeyFrame {
	return core.NewKeyFrame(k...)
}

// recorder is an in-memory Recorder.
type recorder struct {
	scores []int
	diffs  []config.Difficulty
	err    error
}

func (r *recorder) RecordGame(d config.Difficulty, score int, _ time.Duration) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.scores = append(r.scores, score)
	r.diffs = append(r.diffs, d)
	best := r.scores[0]
	for _, s := range r.scores {
		if s > best {
			best = s
		}
	}
	return best, nil
}
