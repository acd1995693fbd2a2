package bar

import "fmt"

// MouseButton is the translated form of an X11 button-press detail, with
// scroll direction already resolved against the reverse-scroll flag.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseScrollUp
	MouseScrollDown
)

// decodeMouseButton translates a raw X11 button detail (1..=5) into a
// MouseButton, swapping the scroll pair when reverseScroll is set. Callers
// must only pass details in 1..=5; anything else is a windowing-system bug
// and is not this function's concern.
func decodeMouseButton(detail uint8, reverseScroll bool) MouseButton {
	switch detail {
	case 1:
		return MouseLeft
	case 2:
		return MouseMiddle
	case 3:
		return MouseRight
	case 4:
		if reverseScroll {
			return MouseScrollUp
		}
		return MouseScrollDown
	default: // 5
		if reverseScroll {
			return MouseScrollDown
		}
		return MouseScrollUp
	}
}

// MouseEvent is delivered to a panel on its endpoint in response to a
// button press landing inside the panel's rectangle. X and Y are relative
// to the panel's origin and the bar's top edge respectively.
type MouseEvent struct {
	Button MouseButton
	X      int32
	Y      int32
}

// Event is the tagged union of things the core can deliver to a panel's
// endpoint.
type Event struct {
	Mouse  *MouseEvent
	Action string
}

// EventResponse is a panel's synchronous reply to a delivered Event, or the
// failure of the core to deliver one at all.
type EventResponse struct {
	Err string
}

// Ok reports whether the response represents success.
func (r EventResponse) Ok() bool {
	return r.Err == ""
}

// String renders the response using the IPC wire format ("SUCCESS" or
// "FAILURE: <reason>").
func (r EventResponse) String() string {
	if r.Ok() {
		return "SUCCESS"
	}
	return fmt.Sprintf("FAILURE: %s", r.Err)
}
