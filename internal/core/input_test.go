package core

import "testing"

func TestNewInputStateCopiesHeldKeys(t *testing.T) {
	keys := map[Key]bool{KeyLeft: true, KeyRight: false}
	in := NewInputState(200, keys)

	if !in.Held(KeyLeft) {
		t.Error("held key should survive")
	}
	if in.Held(KeyRight) {
		t.Error("released key should not be carried")
	}
	if in.Device != DevicePointer {
		t.Errorf("Device = %v, expected pointer", in.Device)
	}

	// Mutating the copy must not touch the source map
	in.Release(KeyLeft)
	if !keys[KeyLeft] {
		t.Error("NewInputState should copy the key map")
	}
}

func TestInputStatePressRelease(t *testing.T) {
	var in InputState
	in.Press(KeyRight)
	if !in.Held(KeyRight) {
		t.Error("Press should hold the key")
	}
	in.Release(KeyRight)
	if in.Held(KeyRight) {
		t.Error("Release should clear the key")
	}
}

func TestMovePointerResetsDevice(t *testing.T) {
	in := NewInputState(0, nil)
	in.Device = DeviceKeyboard
	in.MovePointer(123)

	if in.PointerX != 123 {
		t.Errorf("PointerX = %f, expected 123", in.PointerX)
	}
	if in.Device != DevicePointer {
		t.Error("pointer movement should hand control back to the pointer")
	}
}
