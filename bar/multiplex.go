package bar

import (
	"context"
	"sync"
)

// IPCRequest is a single line read from an accepted IPC connection, paired
// with the channel the core must send exactly one EventResponse on.
type IPCRequest struct {
	Line  string
	Reply chan<- EventResponse
}

// panelUpdate is the (region, index, draw_info) tuple the multiplexer
// yields for a panel update, named after the spec's description of the
// stream multiplexer's output.
type panelUpdate struct {
	Region Region
	Index  int
	Draw   *DrawInfo
}

// muxItem tags which of the two non-IPC source kinds Next returned. At most
// one field is non-nil; both are nil when Next returned an IPC request.
type muxItem struct {
	Panel  *panelUpdate
	Window *WindowEvent
}

// Multiplexer owns the keyed map of per-region, per-index panel update
// streams alongside the windowing-input and IPC-line streams, and presents
// them to the repaint dispatcher as a single ordered sequence of items.
//
// Each individual stream's items are delivered in the order the panel
// produced them; no ordering is guaranteed across streams. Starvation
// freedom relies on Go's select statement choosing pseudo-randomly among
// ready cases, which is adequate here since no single source is ever
// continuously ready.
type Multiplexer struct {
	updates chan panelUpdate
	window  <-chan WindowEvent
	ipc     <-chan IPCRequest

	wg sync.WaitGroup
}

// NewMultiplexer builds a Multiplexer over the windowing-input and
// IPC-line streams. Panel streams are added afterward with Register.
func NewMultiplexer(window <-chan WindowEvent, ipc <-chan IPCRequest) *Multiplexer {
	return &Multiplexer{
		updates: make(chan panelUpdate),
		window:  window,
		ipc:     ipc,
	}
}

// Register starts forwarding a single panel's update stream into the
// multiplexer's shared output. The forwarding goroutine exits when the
// stream closes or ctx is canceled.
func (m *Multiplexer) Register(ctx context.Context, region Region, index int, stream <-chan *DrawInfo) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case draw, ok := <-stream:
				if !ok {
					return
				}
				select {
				case m.updates <- panelUpdate{Region: region, Index: index, Draw: draw}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Next blocks until a panel update, a windowing event, or an IPC request is
// ready, or ctx is canceled, and returns the item that won. The IPC stream
// is surfaced through a separate typed field so Run doesn't need to type-
// switch on an any payload.
func (m *Multiplexer) Next(ctx context.Context) (item muxItem, ipcReq *IPCRequest, ok bool) {
	select {
	case u := <-m.updates:
		return muxItem{Panel: &u}, nil, true
	case w, open := <-m.window:
		if !open {
			return muxItem{}, nil, false
		}
		return muxItem{Window: &w}, nil, true
	case r, open := <-m.ipc:
		if !open {
			return muxItem{}, nil, false
		}
		return muxItem{}, &r, true
	case <-ctx.Done():
		return muxItem{}, nil, false
	}
}
