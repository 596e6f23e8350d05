package snake

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the random source used for food placement.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a generator seeded from the current time, so every run
// places food differently.
func NewRand() Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
