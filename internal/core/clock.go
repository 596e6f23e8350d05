package core

import "time"

// Clock is the time source for interval gating.
// Games read it instead of time.Now so tests can drive time manually.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so elapsed-time comparisons are immune to wall clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
