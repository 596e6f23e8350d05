package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultTuning returns the hardcoded tuning table.
// It mirrors defaults/snake.yaml and is used when the embedded copy cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		FoodExpiryPenalty: 2,
		Difficulties: map[string]DifficultyTuning{
			"easy":     {MoveIntervalMs: 55, FoodLifetimeS: 20},
			"normal":   {MoveIntervalMs: 40, FoodLifetimeS: 10},
			"hard":     {MoveIntervalMs: 35, FoodLifetimeS: 8},
			"extreme":  {MoveIntervalMs: 20, FoodLifetimeS: 7},
			"extreme2": {MoveIntervalMs: 16, FoodLifetimeS: 8},
		},
	}
}

// GetDefaultYAML returns the embedded default tuning YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
