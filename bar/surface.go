package bar

import "github.com/edgebar/edgebar/common"

// TextAlignment mirrors the text alignment options a panel's draw callback
// may ask the surface for.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// TextMeasurer is the subset of Surface a panel producer needs to size its
// next DrawInfo before the layout engine has assigned it an origin. Panels
// that never draw text don't need one.
type TextMeasurer interface {
	TextWidth(text string) int32
}

// Surface is the drawing surface the core composites panel content onto. A
// concrete implementation owns the X11 connection and window; the core only
// ever sees this interface, so it can be exercised in tests without an X
// server.
type Surface interface {
	// Width returns the current width of the surface in pixels.
	Width() int32

	// Height returns the current height of the surface in pixels.
	Height() int32

	// FillRect clears a rectangle with the given color using a source
	// composite operator, so translucent panels never accumulate.
	FillRect(x, y, w, h int32, c common.Color)

	// DrawText draws text at the given origin with the given color.
	DrawText(x, y int32, text string, c common.Color)

	// TextWidth measures the rendered width of text in pixels.
	TextWidth(text string) int32

	// Flush pushes queued drawing commands to the X server.
	Flush()

	// Map makes the bar window visible.
	Map()

	// Unmap hides the bar window without destroying it.
	Unmap()

	// Events returns the channel of windowing-system events. It is closed
	// when the underlying connection is no longer usable.
	Events() <-chan WindowEvent

	// Close releases the surface and the underlying connection.
	Close() error
}

// WindowEvent is a tagged union of the windowing-system events the core
// reacts to. Only Expose and ButtonPress carry meaning; everything else is
// reported as EventOther and ignored.
type WindowEvent struct {
	Kind  WindowEventKind
	Mouse MouseEventRaw
}

// WindowEventKind discriminates the member of WindowEvent that is populated.
type WindowEventKind int

const (
	EventOther WindowEventKind = iota
	EventExpose
	EventButtonPress
)

// MouseEventRaw is the windowing system's view of a button press, before
// translation into a panel-relative bar.MouseEvent.
type MouseEventRaw struct {
	Detail     uint8
	EventX     int32
	EventY     int32
	RootX      int32
	RootY      int32
	SameScreen bool
}
