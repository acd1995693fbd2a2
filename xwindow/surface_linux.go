//go:build linux
// +build linux

// Package xwindow implements bar.Surface over the X11 bindings in
// internal/x11, the concrete windowing backend a built bar is composited
// onto.
package xwindow

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>
*/
import "C"

import (
	"strconv"
	"sync"
	"time"

	"github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/common"
	"github.com/edgebar/edgebar/internal/x11"
)

var initThreadsOnce sync.Once

// pollInterval bounds how long a Close can take to be noticed by the event
// loop; XNextEvent has no portable interrupt, so the loop polls XPending
// instead of blocking on it.
const pollInterval = 5 * time.Millisecond

// Surface is the X11-backed bar.Surface: one top-level window, its
// display connection, and the event-translation loop feeding WindowEvents
// to the core.
type Surface struct {
	display *x11.Display
	window  x11.Window
	screen  int
	hwnd    uintptr

	width, height int32
	bg            common.Color

	events    chan bar.WindowEvent
	closeOnce sync.Once
	closed    chan struct{}
}

// resolveScreen maps a configured monitor identifier to an X11 screen
// number. Xlib's own multi-head mechanism, without linking Xinerama or
// RandR, is per-screen rather than per-output: "monitor" is treated as a
// zero-based screen index. An empty, non-numeric, or out-of-range value
// falls back to the display's default screen, which is the single-monitor
// case every existing config continues to hit.
func resolveScreen(display *x11.Display, monitor string) int {
	def := x11.DefaultScreen(display)
	if monitor == "" {
		return def
	}
	idx, err := strconv.Atoi(monitor)
	if err != nil || idx < 0 || idx >= x11.ScreenCount(display) {
		return def
	}
	return idx
}

// New opens a display, creates a top-level window of the given geometry
// and background on the resolved monitor, and starts the event-translation
// loop. When transparent is set and the display has no 32-bit TrueColor
// visual, the window falls back to an opaque one rather than failing to
// start.
func New(name, monitor string, x, y, width, height int32, bg common.Color, transparent bool) (*Surface, error) {
	initThreadsOnce.Do(func() {
		C.XInitThreads()
	})

	display, err := x11.OpenDisplay()
	if err != nil {
		return nil, err
	}

	screen := resolveScreen(display, monitor)
	if width <= 0 {
		width = x11.ScreenWidth(display, screen)
	}
	vi := x11.ChooseVisual(display, screen, transparent)

	var pixel uint32
	if vi.HasAlpha() {
		pixel = bg.Pixel()
	} else {
		pixel = bg.Pixel() & 0x00ffffff
	}

	window := x11.CreateWindow(display, screen, x, y, width, height, vi, pixel)
	hwnd := uintptr(window)
	x11.RegisterDisplay(hwnd, display)

	x11.SelectInput(display, window, x11.ExposureMask|x11.ButtonPressMask)
	x11.StoreName(display, window, name)
	x11.MapWindow(display, window)
	x11.Flush(display)

	s := &Surface{
		display: display,
		window:  window,
		screen:  screen,
		hwnd:    hwnd,
		width:   width,
		height:  height,
		bg:      bg,
		events:  make(chan bar.WindowEvent),
		closed:  make(chan struct{}),
	}

	go s.runEventLoop()
	return s, nil
}

func (s *Surface) runEventLoop() {
	defer close(s.events)
	for {
		select {
		case <-s.closed:
			return
		default:
		}

		if x11.Pending(s.display) == 0 {
			time.Sleep(pollInterval)
			continue
		}

		ev := x11.NextEvent(s.display)
		we := translate(ev)
		select {
		case s.events <- we:
		case <-s.closed:
			return
		}
	}
}

func translate(ev x11.Event) bar.WindowEvent {
	switch {
	case ev.IsExpose():
		return bar.WindowEvent{Kind: bar.EventExpose}
	case ev.IsButtonPress():
		return bar.WindowEvent{
			Kind: bar.EventButtonPress,
			Mouse: bar.MouseEventRaw{
				Detail:     ev.Detail,
				EventX:     ev.X,
				EventY:     ev.Y,
				RootX:      ev.RootX,
				RootY:      ev.RootY,
				SameScreen: ev.Same,
			},
		}
	default:
		return bar.WindowEvent{Kind: bar.EventOther}
	}
}

func (s *Surface) Width() int32  { return s.width }
func (s *Surface) Height() int32 { return s.height }

func (s *Surface) FillRect(x, y, w, h int32, c common.Color) {
	x11.FillRect(s.display, x11.Drawable(s.window), x, y, w, h, c.Pixel())
}

func (s *Surface) DrawText(x, y int32, text string, c common.Color) {
	x11.DrawText(s.display, x11.Drawable(s.window), x, y, text, c.Pixel())
}

func (s *Surface) TextWidth(text string) int32 {
	return x11.TextWidth(s.display, x11.Drawable(s.window), text)
}

func (s *Surface) Flush() {
	x11.Flush(s.display)
}

func (s *Surface) Map() {
	x11.MapWindow(s.display, s.window)
	x11.Flush(s.display)
}

func (s *Surface) Unmap() {
	x11.UnmapWindow(s.display, s.window)
	x11.Flush(s.display)
}

func (s *Surface) Events() <-chan bar.WindowEvent {
	return s.events
}

func (s *Surface) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	x11.UnregisterDisplay(s.hwnd)
	x11.CloseDisplay(s.display)
	return nil
}

var _ bar.Surface = (*Surface)(nil)
