package bar

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/edgebar/edgebar/common"
)

// Info is the process-wide, read-only snapshot of the bar published exactly
// once after window creation. Any panel may read it; nothing may mutate it
// after publication.
type Info struct {
	Width       int32
	Height      int32
	Background  common.Color
	Transparent bool
}

var publishedInfo atomic.Pointer[Info]

// PublishInfo records the bar's Info snapshot for panels to read. It is
// intended to be called exactly once, immediately after the window is
// created; later calls are rejected so no panel can ever observe a partial
// or replaced snapshot.
func PublishInfo(info Info) {
	publishedInfo.CompareAndSwap(nil, &info)
}

// GetInfo returns the published Info, or the zero value if called before
// PublishInfo.
func GetInfo() Info {
	if p := publishedInfo.Load(); p != nil {
		return *p
	}
	return Info{}
}

// Bar is the layout and repaint engine: it owns the three panel regions,
// the layout extents, and the drawing surface, and drives the single
// cooperative main loop that multiplexes panel updates, windowing input,
// and IPC lines.
type Bar struct {
	name          string
	surface       Surface
	width         int32
	height        int32
	bg            common.Color
	margins       Margins
	reverseScroll bool
	ipcEnabled    bool
	log           *logrus.Logger

	mapped      bool
	centerState CenterState
	ext         extents

	leftPanels   []*Panel
	centerPanels []*Panel
	rightPanels  []*Panel

	mux *Multiplexer
}

// regionSlice returns the live slice for a region, so callers can operate
// generically across Left/Center/Right without a switch at every call
// site.
func (b *Bar) regionSlice(r Region) []*Panel {
	switch r {
	case Left:
		return b.leftPanels
	case Center:
		return b.centerPanels
	default:
		return b.rightPanels
	}
}

// AddPanel appends a panel to the named region and returns its index
// within that region, which is the index used for both update_panel and
// IPC addressing ("#l<index>.verb").
func (b *Bar) AddPanel(region Region, p *Panel) int {
	switch region {
	case Left:
		b.leftPanels = append(b.leftPanels, p)
		return len(b.leftPanels) - 1
	case Center:
		b.centerPanels = append(b.centerPanels, p)
		return len(b.centerPanels) - 1
	default:
		b.rightPanels = append(b.rightPanels, p)
		return len(b.rightPanels) - 1
	}
}

// allPanels iterates every panel across all three regions in
// left-center-right order, the order mouse dispatch and panel-name lookup
// both rely on.
func (b *Bar) allPanels() []*Panel {
	all := make([]*Panel, 0, len(b.leftPanels)+len(b.centerPanels)+len(b.rightPanels))
	all = append(all, b.leftPanels...)
	all = append(all, b.centerPanels...)
	all = append(all, b.rightPanels...)
	return all
}

// Run drives the main loop until the multiplexer is exhausted, a "quit" IPC
// command is processed, or ctx is canceled. It is the single point where
// panel updates, windowing input, and IPC lines are serialized onto one
// goroutine, which is what lets the rest of the engine treat the surface
// and extents as single-writer.
func (b *Bar) Run(ctx context.Context) error {
	if err := b.redrawBar(); err != nil {
		b.log.WithError(err).Error("initial repaint failed")
	}

	for {
		item, ipcReq, ok := b.mux.Next(ctx)
		if !ok {
			return ctx.Err()
		}

		switch {
		case ipcReq != nil:
			if b.handleIPCRequest(*ipcReq) {
				return nil
			}
		case item.Panel != nil:
			b.handlePanelUpdate(*item.Panel)
		case item.Window != nil:
			b.handleWindowEvent(*item.Window)
		}
	}
}

func (b *Bar) handlePanelUpdate(u panelUpdate) {
	if err := b.UpdatePanel(u.Region, u.Index, u.Draw); err != nil {
		b.log.WithError(err).WithField("region", u.Region.String()).WithField("index", u.Index).
			Warn("panel update produced an error")
	}
}

func (b *Bar) handleWindowEvent(ev WindowEvent) {
	switch ev.Kind {
	case EventExpose:
		b.log.Info("received expose event; redrawing entire bar")
		if err := b.redrawBar(); err != nil {
			b.log.WithError(err).Error("expose repaint failed")
		}
	case EventButtonPress:
		b.dispatchMouse(ev.Mouse)
	default:
		// all other windowing events are ignored
	}
}

// Shutdown invokes every panel's shutdown hook under a bounded total time
// budget. Hooks still running when the budget expires are abandoned: Go
// cannot preempt a goroutine, so "abandoned" means the errgroup stops
// waiting for it, not that it is killed.
func (b *Bar) Shutdown(budget time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	g, _ := errgroup.WithContext(ctx)
	for _, p := range b.allPanels() {
		if p.DrawInfo == nil || p.DrawInfo.ShutdownFn == nil {
			continue
		}
		fn := p.DrawInfo.ShutdownFn
		g.Go(func() error {
			return fn()
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		b.log.Warn("shutdown time budget exceeded; abandoning remaining panel shutdown hooks")
	}
}

func (b *Bar) showPanels() {
	for _, p := range b.allPanels() {
		if p.DrawInfo == nil || p.DrawInfo.ShowFn == nil {
			continue
		}
		if err := p.DrawInfo.ShowFn(); err != nil {
			b.log.WithError(err).Warn("panel show hook failed")
		}
	}
}

func (b *Bar) hidePanels() {
	for _, p := range b.allPanels() {
		if p.DrawInfo == nil || p.DrawInfo.HideFn == nil {
			continue
		}
		if err := p.DrawInfo.HideFn(); err != nil {
			b.log.WithError(err).Warn("panel hide hook failed")
		}
	}
}
