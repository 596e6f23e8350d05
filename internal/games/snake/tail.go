package snake

import (
	"iter"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Tail is the bounded queue of body segments trailing the head, oldest first.
// The number of stored segments never exceeds the target length; pushing onto
// a full tail evicts the oldest segment.
type Tail struct {
	points []core.Point
	length int
}

// NewTail creates an empty tail with the given target length.
func NewTail(length int) *Tail {
	return &Tail{
		points: make([]core.Point, 0, length),
		length: length,
	}
}

// Push appends p as the newest segment, evicting the oldest one when full.
// A tail with target length 0 stores nothing.
func (t *Tail) Push(p core.Point) {
	if t.length == 0 {
		return
	}
	if len(t.points) >= t.length {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// IncLength grows the target length by one.
func (t *Tail) IncLength() {
	t.length++
}

// Len returns the target length, which may exceed the number of stored
// segments right after growth.
func (t *Tail) Len() int {
	return t.length
}

// Size returns the number of segments currently stored.
func (t *Tail) Size() int {
	return len(t.points)
}

// Contains reports whether any segment occupies p.
func (t *Tail) Contains(p core.Point) bool {
	return slices.Contains(t.points, p)
}

// All yields the segments oldest first.
func (t *Tail) All() iter.Seq[core.Point] {
	return slices.Values(t.points)
}
