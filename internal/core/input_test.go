package core

import "testing"

func TestKeyFramePressedOrder(t *testing.T) {
	f := NewKeyFrame()
	if _, ok := f.Pressed(); ok {
		t.Fatal("empty frame should have no pressed key")
	}

	f.Set(KeyLeft)
	f.Set(KeyEnter)
	f.Set(KeyLeft) // repeat within a frame

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	key, ok := f.Pressed()
	if !ok || key != KeyLeft {
		t.Errorf("Pressed() = %v, %v, expected Left, true", key, ok)
	}
	if !f.Has(KeyEnter) {
		t.Error("Has(Enter) should be true")
	}
}

func TestKeyFrameIgnoresNone(t *testing.T) {
	f := NewKeyFrame(KeyNone)
	if f.Len() != 0 {
		t.Errorf("KeyNone should not be recorded, Len() = %d", f.Len())
	}
}

func TestKeyFrameClear(t *testing.T) {
	f := NewKeyFrame(KeyW, KeyEscape)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("after Clear, Len() = %d, expected 0", f.Len())
	}
	if f.Has(KeyW) {
		t.Error("after Clear, Has(W) should be false")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyUp:     "Up",
		KeyD:      "D",
		KeyEnter:  "Enter",
		KeyEscape: "Escape",
		Key(99):   "Unknown",
	}
	for k, expected := range tests {
		if k.String() != expected {
			t.Errorf("Key(%d).String() = %q, expected %q", int(k), k.String(), expected)
		}
	}
}
