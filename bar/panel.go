package bar

import (
	"sync"

	"github.com/edgebar/edgebar/common"
)

// Region names one of the three horizontal bands that organize panels.
type Region int

const (
	Left Region = iota
	Center
	Right
)

// String returns the single-letter IPC addressing form of the region
// ("l", "c", "r"), as used by the "#l3.hide"-style panel visibility
// commands.
func (r Region) String() string {
	switch r {
	case Left:
		return "l"
	case Center:
		return "c"
	case Right:
		return "r"
	default:
		return "?"
	}
}

// regionFromLetter reverses Region.String, returning ok=false for any
// letter other than l/c/r.
func regionFromLetter(letter byte) (Region, bool) {
	switch letter {
	case 'l':
		return Left, true
	case 'c':
		return Center, true
	case 'r':
		return Right, true
	default:
		return 0, false
	}
}

// Endpoint is the bidirectional channel pair attached to a panel that opted
// into receiving events. It is shared between the event router (which sends
// on it) and a detached goroutine waiting on an IPC reply (which both sends
// and receives on it), so access to the two halves is guarded by a mutex
// that must never be held across a channel operation that can block.
type Endpoint struct {
	mu   sync.Mutex
	send chan<- Event
	recv <-chan EventResponse
}

// NewEndpoint wraps a panel's event/response channel pair for safe sharing
// between the event router and background IPC-reply goroutines.
func NewEndpoint(send chan<- Event, recv <-chan EventResponse) *Endpoint {
	return &Endpoint{send: send, recv: recv}
}

// Send delivers an event to the panel. It does not block past the channel
// send itself and is safe to call concurrently with Recv.
func (e *Endpoint) Send(ev Event) {
	e.mu.Lock()
	ch := e.send
	e.mu.Unlock()
	ch <- ev
}

// Recv blocks for a single reply from the panel. If the reply channel is
// closed, it returns an Ok response, per the spec's "default to Ok" rule.
func (e *Endpoint) Recv() EventResponse {
	e.mu.Lock()
	ch := e.recv
	e.mu.Unlock()
	resp, ok := <-ch
	if !ok {
		return EventResponse{}
	}
	return resp
}

// Panel is a single entry in one of the bar's three regions: identity,
// visibility, the most recently produced draw info, and the bookkeeping the
// layout/repaint engine needs between passes.
type Panel struct {
	// Name is the stable identifier used for IPC addressing ("name.action").
	Name string

	// Visible is mutable via IPC show/hide/toggle commands.
	Visible bool

	// DrawInfo is replaced wholesale on every update from the panel's
	// stream. A nil DrawInfo is shown-but-zero-width for layout purposes.
	DrawInfo *DrawInfo

	// X is the last x-coordinate the panel was drawn at. Valid only when
	// the panel is currently shown.
	X int32

	// lastStatus remembers whether the panel was Shown on the previous
	// resolver pass, so the latch driver can detect transitions.
	lastStatus bool

	// Endpoint is non-nil iff the panel opted into receiving events at
	// registration.
	Endpoint *Endpoint
}

// width returns the panel's current draw width, or 0 if it has never
// produced a DrawInfo.
func (p *Panel) width() int32 {
	if p.DrawInfo == nil {
		return 0
	}
	return p.DrawInfo.Width
}

// bounds returns the panel's placed rectangle at its last-drawn x, spanning
// the bar's full height. Used by redrawOne to clear exactly the panel's old
// rectangle and by dispatchMouse to hit-test a click against it, the same
// role common.Rect plays as a component's hit-test bounds elsewhere in this
// codebase's lineage.
func (p *Panel) bounds(height int32) common.Rect {
	return common.Rect{X: p.X, Y: 0, W: p.width(), H: height}
}
