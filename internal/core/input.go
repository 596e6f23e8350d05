package core

// Key is a logical key, abstracted from the physical terminal key event.
// The platform maps raw key presses onto these before the game sees them.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEnter
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyFrame is the set of keys pressed during one frame.
// Keys keep their arrival order so that Pressed is deterministic.
type KeyFrame struct {
	keys []Key
}

// NewKeyFrame creates an empty key frame.
func NewKeyFrame(keys ...Key) KeyFrame {
	var f KeyFrame
	for _, k := range keys {
		f.Set(k)
	}
	return f
}

// Set marks a key as pressed for this frame. Repeats within a frame are ignored.
func (f *KeyFrame) Set(k Key) {
	if k == KeyNone || f.Has(k) {
		return
	}
	f.keys = append(f.keys, k)
}

// Has returns true if the given key was pressed this frame.
func (f KeyFrame) Has(k Key) bool {
	for _, key := range f.keys {
		if key == k {
			return true
		}
	}
	return false
}

// Pressed returns the first key pressed this frame.
// The game consumes at most one key per tick.
func (f KeyFrame) Pressed() (Key, bool) {
	if len(f.keys) == 0 {
		return KeyNone, false
	}
	return f.keys[0], true
}

// Len returns the number of distinct keys pressed this frame.
func (f KeyFrame) Len() int {
	return len(f.keys)
}

// Clear resets the frame for the next tick.
func (f *KeyFrame) Clear() {
	f.keys = f.keys[:0]
}
