package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Difficulty is a named difficulty level, ordered from easiest to hardest.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Extreme
	Extreme2
)

// DefaultDifficulty is selected on every start and after every restart.
const DefaultDifficulty = Normal

// extreme2Tagline is prepended to the hardest level's description.
const extreme2Tagline = "Why the fuck would you even want this?"

// All returns every difficulty level in order.
func All() []Difficulty {
	return []Difficulty{Easy, Normal, Hard, Extreme, Extreme2}
}

// ParseDifficulty looks a level up by its ID or display name (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range All() {
		if strings.EqualFold(s, d.ID()) || strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return DefaultDifficulty, fmt.Errorf("config: unknown difficulty %q", s)
}

// ID returns the key of this level in the tuning table.
func (d Difficulty) ID() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	case Extreme2:
		return "extreme2"
	default:
		return "unknown"
	}
}

// String returns the display name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Extreme:
		return "Extreme"
	case Extreme2:
		return "HONDA CIVIC"
	default:
		return "Unknown"
	}
}

// Increase steps to the next harder level. The hardest level stays put.
func (d *Difficulty) Increase() {
	*d = Difficulty(core.Clamp(int(*d)+1, int(Easy), int(Extreme2)))
}

// Decrease steps to the next easier level. Easy stays put.
func (d *Difficulty) Decrease() {
	*d = Difficulty(core.Clamp(int(*d)-1, int(Easy), int(Extreme2)))
}

// SnakeMoveInterval returns the time between two one-cell moves of the head.
func (d Difficulty) SnakeMoveInterval() time.Duration {
	return time.Duration(d.tuning().MoveIntervalMs) * time.Millisecond
}

// FoodLifetime returns how long a food pellet lasts before it expires.
func (d Difficulty) FoodLifetime() time.Duration {
	return time.Duration(d.tuning().FoodLifetimeS) * time.Second
}

// Description summarizes the level's tunables. May span several lines.
func (d Difficulty) Description() string {
	dt := d.tuning()
	desc := fmt.Sprintf("Snake moves every %dms and food lasts for %d seconds",
		dt.MoveIntervalMs, dt.FoodLifetimeS)

	if d == Extreme2 {
		desc = extreme2Tagline + "\n" + desc
	}
	return desc
}

func (d Difficulty) tuning() DifficultyTuning {
	if dt, ok := active.Difficulties[d.ID()]; ok {
		return dt
	}
	return DefaultTuning().Difficulties[DefaultDifficulty.ID()]
}
