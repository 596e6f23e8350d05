package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, DefaultTuning()) {
		t.Errorf("embedded tuning %+v differs from DefaultTuning() %+v", loaded, DefaultTuning())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("embedded YAML should not be empty")
	}
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "difficulties: [oops"},
		{"missing level", `
food_expiry_penalty: 2
difficulties:
  easy: {move_interval_ms: 55, food_lifetime_s: 20}
`},
		{"zero interval", `
food_expiry_penalty: 2
difficulties:
  easy: {move_interval_ms: 0, food_lifetime_s: 20}
  normal: {move_interval_ms: 40, food_lifetime_s: 10}
  hard: {move_interval_ms: 35, food_lifetime_s: 8}
  extreme: {move_interval_ms: 20, food_lifetime_s: 7}
  extreme2: {move_interval_ms: 16, food_lifetime_s: 8}
`},
		{"negative penalty", `
food_expiry_penalty: -1
difficulties:
  easy: {move_interval_ms: 55, food_lifetime_s: 20}
  normal: {move_interval_ms: 40, food_lifetime_s: 10}
  hard: {move_interval_ms: 35, food_lifetime_s: 8}
  extreme: {move_interval_ms: 20, food_lifetime_s: 7}
  extreme2: {move_interval_ms: 16, food_lifetime_s: 8}
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestActivePenalty(t *testing.T) {
	if Active().FoodExpiryPenalty != 2 {
		t.Errorf("FoodExpiryPenalty = %d, expected 2", Active().FoodExpiryPenalty)
	}
}

func TestDifficultyTunables(t *testing.T) {
	tests := []struct {
		d        Difficulty
		name     string
		interval time.Duration
		lifetime time.Duration
	}{
		{Easy, "Easy", 55 * time.Millisecond, 20 * time.Second},
		{Normal, "Normal", 40 * time.Millisecond, 10 * time.Second},
		{Hard, "Hard", 35 * time.Millisecond, 8 * time.Second},
		{Extreme, "Extreme", 20 * time.Millisecond, 7 * time.Second},
		{Extreme2, "HONDA CIVIC", 16 * time.Millisecond, 8 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.d.ID(), func(t *testing.T) {
			if tc.d.String() != tc.name {
				t.Errorf("String() = %q, expected %q", tc.d.String(), tc.name)
			}
			if tc.d.SnakeMoveInterval() != tc.interval {
				t.Errorf("SnakeMoveInterval() = %v, expected %v", tc.d.SnakeMoveInterval(), tc.interval)
			}
			if tc.d.FoodLifetime() != tc.lifetime {
				t.Errorf("FoodLifetime() = %v, expected %v", tc.d.FoodLifetime(), tc.lifetime)
			}
		})
	}
}

func TestDifficultyIncreaseDecreaseClamp(t *testing.T) {
	d := Easy
	d.Decrease()
	if d != Easy {
		t.Errorf("Decrease from Easy = %v, expected Easy", d)
	}

	d = Extreme2
	d.Increase()
	if d != Extreme2 {
		t.Errorf("Increase from Extreme2 = %v, expected Extreme2", d)
	}

	// Walk the whole range both ways and past the ends
	d = Easy
	for i, expected := range []Difficulty{Normal, Hard, Extreme, Extreme2, Extreme2, Extreme2} {
		d.Increase()
		if d != expected {
			t.Fatalf("step %d: Increase() = %v, expected %v", i, d, expected)
		}
	}
	for i, expected := range []Difficulty{Extreme, Hard, Normal, Easy, Easy} {
		d.Decrease()
		if d != expected {
			t.Fatalf("step %d: Decrease() = %v, expected %v", i, d, expected)
		}
	}
}

func TestDifficultyRandomWalkStaysInRange(t *testing.T) {
	d := DefaultDifficulty
	// Deterministic pseudo-random walk of increases and decreases
	seq := uint32(7)
	for range 1000 {
		seq = seq*1103515245 + 12345
		if seq&0x100 == 0 {
			d.Increase()
		} else {
			d.Decrease()
		}
		if d < Easy || d > Extreme2 {
			t.Fatalf("difficulty left range: %d", d)
		}
	}
}

func TestDifficultyDescription(t *testing.T) {
	desc := Normal.Description()
	expected := "Snake moves every 40ms and food lasts for 10 seconds"
	if desc != expected {
		t.Errorf("Normal.Description() = %q, expected %q", desc, expected)
	}

	lines := strings.Split(Extreme2.Description(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Extreme2 description should have 2 lines, got %d", len(lines))
	}
	if lines[0] != extreme2Tagline {
		t.Errorf("first line = %q, expected the tagline", lines[0])
	}
	if lines[1] != "Snake moves every 16ms and food lasts for 8 seconds" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", Easy, false},
		{"NORMAL", Normal, false},
		{"honda civic", Extreme2, false},
		{"extreme2", Extreme2, false},
		{"impossible", DefaultDifficulty, true},
	}

	for _, tc := range tests {
		d, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if d != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, d, tc.expected)
		}
	}
}
