package core

// Key is a movement key tracked in the held-key map.
// Several physical keys map to one Key (Left arrow, a and A are all KeyLeft).
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// InputDevice tags which source last steered the player.
type InputDevice int

const (
	DevicePointer InputDevice = iota
	DeviceKeyboard
)

// String returns a human-readable name for the device.
func (d InputDevice) String() string {
	if d == DeviceKeyboard {
		return "keyboard"
	}
	return "pointer"
}

// InputState is the active-input snapshot the simulation reads every step.
// Event sources write it; the simulation only flips Device to keyboard.
type InputState struct {
	Keys     map[Key]bool // Held movement keys
	PointerX float64      // Last known pointer x in arena units
	Device   InputDevice  // Last active device
}

// NewInputState creates an input state with the pointer at the given x.
// Held keys are copied from keys so callers can carry them across resets.
func NewInputState(pointerX float64, keys map[Key]bool) InputState {
	held := make(map[Key]bool, len(keys))
	for k, v := range keys {
		if v {
			held[k] = true
		}
	}
	return InputState{
		Keys:     held,
		PointerX: pointerX,
		Device:   DevicePointer,
	}
}

// Press marks a key as held.
func (in *InputState) Press(k Key) {
	if in.Keys == nil {
		in.Keys = make(map[Key]bool)
	}
	in.Keys[k] = true
}

// Release marks a key as no longer held.
func (in *InputState) Release(k Key) {
	delete(in.Keys, k)
}

// Held returns true if the key is currently held.
func (in InputState) Held(k Key) bool {
	return in.Keys[k]
}

// MovePointer records a pointer movement and hands steering back to the pointer.
func (in *InputState) MovePointer(x float64) {
	in.PointerX = x
	in.Device = DevicePointer
}
