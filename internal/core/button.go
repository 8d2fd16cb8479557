package core

// Button is one of the logical buttons the runtime tracks held state for.
// Platforms translate raw keys and mouse buttons into these values.
type Button int

// The enumeration order is significant: held-button repeat notifications
// are delivered in this order every tick.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSpace
	ButtonPageUp
	ButtonPageDown
	ButtonEscape
	ButtonReturn
	ButtonShift
	ButtonCtrl
	ButtonMouse1
	ButtonMouse2

	// ButtonCount is the number of tracked buttons.
	ButtonCount

	// ButtonNone marks an event that carries no logical button.
	ButtonNone Button = -1
)

// Valid reports whether b is one of the tracked buttons.
func (b Button) Valid() bool {
	return b >= 0 && b < ButtonCount
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonSpace:
		return "Space"
	case ButtonPageUp:
		return "PageUp"
	case ButtonPageDown:
		return "PageDown"
	case ButtonEscape:
		return "Escape"
	case ButtonReturn:
		return "Return"
	case ButtonShift:
		return "Shift"
	case ButtonCtrl:
		return "Ctrl"
	case ButtonMouse1:
		return "Mouse1"
	case ButtonMouse2:
		return "Mouse2"
	case ButtonNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Buttons returns every tracked button in enumeration order.
func Buttons() []Button {
	out := make([]Button, 0, ButtonCount)
	for b := Button(0); b < ButtonCount; b++ {
		out = append(out, b)
	}
	return out
}
