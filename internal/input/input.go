// Package input translates raw pointer and key events into abstract
// input events tagged with the grid they hit.
package input

// Kind discriminates input events.
type Kind uint8

const (
	// KindKey is a key press with modifiers.
	KindKey Kind = iota
	// KindText is committed text input.
	KindText
	// KindMousePress is a pointer button press.
	KindMousePress
	// KindMouseRelease is a pointer button release.
	KindMouseRelease
	// KindMouseDrag is pointer movement with a button held.
	KindMouseDrag
	// KindMouseWheel is wheel movement.
	KindMouseWheel
)

// String returns the string representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindText:
		return "text"
	case KindMousePress:
		return "mouse-press"
	case KindMouseRelease:
		return "mouse-release"
	case KindMouseDrag:
		return "mouse-drag"
	case KindMouseWheel:
		return "mouse-wheel"
	default:
		return "unknown"
	}
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

// Modifier flags.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the set contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// Button identifies a pointer button or wheel direction.
type Button uint8

// Pointer buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

// Event is one abstract input event. Pointer coordinates are local to
// the grid identified by GridID.
type Event struct {
	Kind   Kind
	GridID int

	Row int
	Col int

	// Key is the key name for KindKey (e.g. "Esc", "F5", "a").
	Key string

	// Text is the committed text for KindText.
	Text string

	Button Button
	Mods   Modifiers
}
