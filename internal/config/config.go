// Package config provides the compiled-in tuning table and the difficulty
// levels derived from it.
package config

// Tuning contains every gameplay tunable of the snake game.
type Tuning struct {
	FoodExpiryPenalty int                         `yaml:"food_expiry_penalty"`
	Difficulties      map[string]DifficultyTuning `yaml:"difficulties"` // Keyed by Difficulty.ID()
}

// DifficultyTuning defines the two tunables a difficulty level derives.
type DifficultyTuning struct {
	MoveIntervalMs uint `yaml:"move_interval_ms"`
	FoodLifetimeS  uint `yaml:"food_lifetime_s"`
}
