package bar

import (
	"github.com/edgebar/edgebar/common"
)

// fakeSurface is a minimal in-memory bar.Surface for exercising the repaint
// and mouse-dispatch logic without an X server.
type fakeSurface struct {
	width, height int32
	events        chan WindowEvent
	fills         int
	flushes       int
}

func newFakeSurface(width, height int32) *fakeSurface {
	return &fakeSurface{width: width, height: height, events: make(chan WindowEvent)}
}

func (f *fakeSurface) Width() int32  { return f.width }
func (f *fakeSurface) Height() int32 { return f.height }
func (f *fakeSurface) FillRect(x, y, w, h int32, c common.Color) {
	f.fills++
}
func (f *fakeSurface) DrawText(x, y int32, text string, c common.Color) {}
func (f *fakeSurface) TextWidth(text string) int32                     { return int32(len(text) * 6) }
func (f *fakeSurface) Flush()                                          { f.flushes++ }
func (f *fakeSurface) Map()                                            {}
func (f *fakeSurface) Unmap()                                          {}
func (f *fakeSurface) Events() <-chan WindowEvent                      { return f.events }
func (f *fakeSurface) Close() error                                    { return nil }

var _ Surface = (*fakeSurface)(nil)

// testBar builds a Bar directly (bypassing NewBar's Surface.Events() wiring
// quirks) for white-box tests of the repaint dispatcher.
func testBar(width, height int32, margins Margins) (*Bar, *fakeSurface) {
	surface := newFakeSurface(width, height)
	b := &Bar{
		surface:     surface,
		width:       width,
		height:      height,
		margins:     margins,
		mapped:      true,
		centerState: CenterStateCenter,
		ext: extents{
			left:         margins.Left,
			centerStart:  width / 2,
			centerCursor: width / 2,
			right:        width,
		},
		log: silentLogger(),
	}
	return b, surface
}

func noopDrawFn(ctx *DrawContext, originX int32) error { return nil }
