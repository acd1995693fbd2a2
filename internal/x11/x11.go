//go:build linux
// +build linux

// Package x11 wraps the Xlib primitives the bar core needs: window
// lifecycle, a drawable handle passed to panel draw callbacks, and an
// event-polling loop. Unlike a general-purpose widget toolkit, it exposes
// nothing about buttons, text inputs, or any other GUI widget tree — a bar
// panel's content is whatever its own draw_fn paints onto the drawable it's
// handed.
package x11

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>
#include <X11/Xatom.h>
#include <X11/Xutil.h>
#include <stdlib.h>
#include <string.h>

static int x11_default_depth(Display *display, int screen) {
    return DefaultDepth(display, screen);
}

static Visual *x11_default_visual(Display *display, int screen) {
    return DefaultVisual(display, screen);
}

// find_argb_visual locates a 32-bit TrueColor visual usable for a
// translucent window, or returns NULL if the display has none (most
// software setups without a compositor-aware Xorg config lack one).
static Visual *find_argb_visual(Display *display, int screen, int *depth_out) {
    XVisualInfo template;
    template.screen = screen;
    template.depth = 32;
    template.class = TrueColor;
    int count = 0;
    XVisualInfo *infos = XGetVisualInfo(
        display,
        VisualScreenMask | VisualDepthMask | VisualClassMask,
        &template,
        &count
    );
    if (infos == NULL || count == 0) {
        if (infos != NULL) {
            XFree(infos);
        }
        return NULL;
    }
    Visual *v = infos[0].visual;
    *depth_out = infos[0].depth;
    XFree(infos);
    return v;
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// Display, Window, and Drawable are thin aliases over the corresponding
// Xlib C types, kept distinct from uintptr so callers can't accidentally
// pass the wrong kind of handle around.
type (
	Display  = C.Display
	Window   = C.Window
	Drawable = C.Drawable
)

const (
	eventExpose      = 12
	eventButtonPress = 4

	// ExposureMask and ButtonPressMask are the event masks the bar
	// registers interest in; a status bar never needs key or motion
	// events.
	ExposureMask    = 1 << 15
	ButtonPressMask = 1 << 2
)

// Event is the subset of an XEvent the bar core cares about, already
// narrowed to its type and (when relevant) the button-press payload.
type Event struct {
	Type   int
	Detail uint8
	X, Y   int32
	RootX  int32
	RootY  int32
	Same   bool
}

// IsExpose reports whether the event is an Expose event.
func (e Event) IsExpose() bool { return e.Type == eventExpose }

// IsButtonPress reports whether the event is a ButtonPress event.
func (e Event) IsButtonPress() bool { return e.Type == eventButtonPress }

// OpenDisplay opens the default X display.
func OpenDisplay() (*Display, error) {
	d := C.XOpenDisplay(nil)
	if d == nil {
		return nil, fmt.Errorf("x11: XOpenDisplay returned nil (is $DISPLAY set?)")
	}
	return d, nil
}

// DefaultScreen returns the display's default screen number.
func DefaultScreen(d *Display) int {
	return int(C.XDefaultScreen(d))
}

// ScreenCount returns the number of screens the display connection serves.
// On a multi-head setup without Xinerama/RandR, each physical monitor is
// its own screen number; this is the picking-a-monitor-at-startup mechanism
// Xlib exposes without linking an extension.
func ScreenCount(d *Display) int {
	return int(C.XScreenCount(d))
}

// ScreenWidth returns a screen's width in pixels, used to size a bar that
// spans the full width of its monitor.
func ScreenWidth(d *Display, screen int) int32 {
	return int32(C.XDisplayWidth(d, C.int(screen)))
}

// CloseDisplay closes a display opened with OpenDisplay.
func CloseDisplay(d *Display) {
	C.XCloseDisplay(d)
}

// VisualInfo is the visual and colormap a window was created with, needed
// again at window-creation time to build the matching XSetWindowAttributes.
type VisualInfo struct {
	Visual   *C.Visual
	Depth    int
	Colormap C.Colormap
	hasAlpha bool
}

// ChooseVisual returns the display's default visual, or — when
// wantTransparent is set and the display advertises one — a 32-bit ARGB
// TrueColor visual suitable for a translucent background under a
// compositing window manager. Falling back to the default visual when no
// ARGB visual exists is the correct behavior: the bar still works, just
// without translucency.
func ChooseVisual(d *Display, screen int, wantTransparent bool) VisualInfo {
	if wantTransparent {
		var depth C.int
		if v := C.find_argb_visual(d, C.int(screen), &depth); v != nil {
			cmap := C.XCreateColormap(d, C.XRootWindow(d, C.int(screen)), v, C.AllocNone)
			return VisualInfo{Visual: v, Depth: int(depth), Colormap: cmap, hasAlpha: true}
		}
	}
	v := C.x11_default_visual(d, C.int(screen))
	depth := int(C.x11_default_depth(d, C.int(screen)))
	cmap := C.XCreateColormap(d, C.XRootWindow(d, C.int(screen)), v, C.AllocNone)
	return VisualInfo{Visual: v, Depth: depth, Colormap: cmap, hasAlpha: false}
}

// HasAlpha reports whether the chosen visual supports a translucent
// background.
func (vi VisualInfo) HasAlpha() bool { return vi.hasAlpha }

// CreateWindow creates a top-level window positioned and sized as given,
// using vi's visual so an ARGB-capable window can be requested when the
// bar was configured transparent.
func CreateWindow(d *Display, screen int, x, y, width, height int32, vi VisualInfo, background uint32) Window {
	root := C.XRootWindow(d, C.int(screen))

	var attrs C.XSetWindowAttributes
	attrs.colormap = vi.Colormap
	attrs.border_pixel = 0
	attrs.background_pixel = C.ulong(background)
	mask := C.CWColormap | C.CWBorderPixel | C.CWBackPixel

	return C.XCreateWindow(
		d, root,
		C.int(x), C.int(y), C.uint(width), C.uint(height),
		0, C.int(vi.Depth), C.InputOutput, vi.Visual,
		C.ulong(mask), &attrs,
	)
}

// SelectInput registers the event mask a window should receive events for.
func SelectInput(d *Display, w Window, mask int) {
	C.XSelectInput(d, w, C.long(mask))
}

// StoreName sets a window's WM_NAME property.
func StoreName(d *Display, w Window, name string) {
	cstr := C.CString(name)
	defer C.free(unsafe.Pointer(cstr))
	C.XStoreName(d, w, cstr)
}

// MapWindow makes a window visible.
func MapWindow(d *Display, w Window) {
	C.XMapWindow(d, w)
}

// UnmapWindow hides a window without destroying it.
func UnmapWindow(d *Display, w Window) {
	C.XUnmapWindow(d, w)
}

// Flush pushes all queued requests to the X server.
func Flush(d *Display) {
	C.XFlush(d)
}

// Pending returns the number of events queued and not yet read.
func Pending(d *Display) int {
	return int(C.XPending(d))
}

// NextEvent blocks until the next event is available and returns its
// narrowed form.
func NextEvent(d *Display) Event {
	var xev C.XEvent
	C.XNextEvent(d, &xev)

	typ := int(*(*C.int)(unsafe.Pointer(&xev)))
	ev := Event{Type: typ}

	switch typ {
	case eventButtonPress:
		be := (*C.XButtonEvent)(unsafe.Pointer(&xev))
		ev.Detail = uint8(be.button)
		ev.X = int32(be.x)
		ev.Y = int32(be.y)
		ev.RootX = int32(be.x_root)
		ev.RootY = int32(be.y_root)
		ev.Same = be.same_screen != 0
	}
	return ev
}

// FillRect fills a rectangle on drawable with a solid pixel value.
func FillRect(d *Display, drawable Drawable, x, y, w, h int32, pixel uint32) {
	gc := C.XCreateGC(d, drawable, 0, nil)
	defer C.XFreeGC(d, gc)
	C.XSetForeground(d, gc, C.ulong(pixel))
	C.XFillRectangle(d, drawable, gc, C.int(x), C.int(y), C.uint(w), C.uint(h))
}

// DrawText draws a single line of text at (x, y), where y is the text
// baseline, in the given pixel color.
func DrawText(d *Display, drawable Drawable, x, y int32, text string, pixel uint32) {
	gc := C.XCreateGC(d, drawable, 0, nil)
	defer C.XFreeGC(d, gc)
	C.XSetForeground(d, gc, C.ulong(pixel))

	cstr := C.CString(text)
	defer C.free(unsafe.Pointer(cstr))
	C.XDrawString(d, drawable, gc, C.int(x), C.int(y), cstr, C.int(len(text)))
}

// TextWidth measures the rendered width of text in the server's default
// font.
func TextWidth(d *Display, drawable Drawable, text string) int32 {
	gc := C.XCreateGC(d, drawable, 0, nil)
	defer C.XFreeGC(d, gc)

	cstr := C.CString(text)
	defer C.free(unsafe.Pointer(cstr))

	fontStruct := C.XQueryFont(d, C.XGContextFromGC(gc))
	if fontStruct == nil {
		return 0
	}
	return int32(C.XTextWidth(fontStruct, cstr, C.int(len(text))))
}

// QueryPointer returns the pointer position relative to a window's origin.
func QueryPointer(d *Display, w Window) (x, y int32) {
	var root, child C.Window
	var rootX, rootY, winX, winY C.int
	var mask C.uint
	C.XQueryPointer(d, w, &root, &child, &rootX, &rootY, &winX, &winY, &mask)
	return int32(winX), int32(winY)
}

// displayRegistry lets Go-level callbacks look up which *Display a window
// handle belongs to without threading a Display pointer through every call
// site — the same role gooey's displayMap played, narrowed to one map.
var (
	displayRegistry   = make(map[uintptr]*Display)
	displayRegistryMu sync.Mutex
)

// RegisterDisplay associates a window handle with the display it was
// created on.
func RegisterDisplay(hwnd uintptr, d *Display) {
	displayRegistryMu.Lock()
	defer displayRegistryMu.Unlock()
	displayRegistry[hwnd] = d
}

// LookupDisplay returns the display a window handle was registered with,
// or nil.
func LookupDisplay(hwnd uintptr) *Display {
	displayRegistryMu.Lock()
	defer displayRegistryMu.Unlock()
	return displayRegistry[hwnd]
}

// UnregisterDisplay removes a window handle's display association.
func UnregisterDisplay(hwnd uintptr) {
	displayRegistryMu.Lock()
	defer displayRegistryMu.Unlock()
	delete(displayRegistry, hwnd)
}
