package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// active is the tuning table the game runs with. It is parsed once from the
// embedded YAML and never modified afterwards.
var active = loadActive()

// Load parses the embedded tuning table.
func Load() (Tuning, error) {
	return Parse(defaultSnakeYAML)
}

// Parse decodes and validates a tuning table.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("config: failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate checks that every difficulty level has usable tunables.
func (t Tuning) Validate() error {
	if t.FoodExpiryPenalty < 0 {
		return fmt.Errorf("config: food_expiry_penalty must not be negative, got %d", t.FoodExpiryPenalty)
	}
	for _, d := range All() {
		dt, ok := t.Difficulties[d.ID()]
		if !ok {
			return fmt.Errorf("config: missing difficulty %q", d.ID())
		}
		if dt.MoveIntervalMs == 0 {
			return fmt.Errorf("config: difficulty %q: move_interval_ms must be positive", d.ID())
		}
		if dt.FoodLifetimeS == 0 {
			return fmt.Errorf("config: difficulty %q: food_lifetime_s must be positive", d.ID())
		}
	}
	return nil
}

// Active returns the tuning table in use.
func Active() Tuning {
	return active
}

func loadActive() Tuning {
	t, err := Load()
	if err != nil {
		return DefaultTuning() // Fallback to hardcoded if embed is broken
	}
	return t
}
