package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawInfo(width int32) *DrawInfo {
	return &DrawInfo{Width: width, DrawFn: noopDrawFn}
}

func TestUpdatePanel_ZeroDeltaRedrawsOnlyThatPanel(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 5}
	b.leftPanels = append(b.leftPanels, p)

	err := b.UpdatePanel(Left, 0, drawInfo(10))
	require.NoError(t, err)
	assert.Equal(t, 1, surface.fills)
	assert.Equal(t, 1, surface.flushes)
}

func TestUpdatePanel_LeftWithSlackStaysLocalized(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 5}
	b.leftPanels = append(b.leftPanels, p)
	b.ext.left = 15 // margins.Left + width

	err := b.UpdatePanel(Left, 0, drawInfo(12))
	require.NoError(t, err)
	assert.Equal(t, 1, surface.fills)
	assert.Equal(t, 1, surface.flushes)
	assert.Equal(t, int32(17), b.ext.left) // margins.Left(5) + new width(12)
}

func TestUpdatePanel_LeftWithoutSlackRedrawsWholeBar(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 5}
	b.leftPanels = append(b.leftPanels, p)
	b.ext.left = 15
	b.ext.centerStart = 16 // leaves no room for the widened panel
	b.centerState = CenterStateCenter

	err := b.UpdatePanel(Left, 0, drawInfo(900))
	require.NoError(t, err)
	assert.Equal(t, 2, surface.fills)
	assert.Equal(t, 2, surface.flushes)
}

func TestUpdatePanel_CenterAlwaysRedrawsWholeBarOnWidthChange(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 495}
	b.centerPanels = append(b.centerPanels, p)

	err := b.UpdatePanel(Center, 0, drawInfo(20))
	require.NoError(t, err)
	assert.Equal(t, 2, surface.fills)
	assert.Equal(t, 2, surface.flushes)
}

func TestRedrawCenterRight_RightUsableAccountsForRightMargin(t *testing.T) {
	// width=1000, margins={Left:0,Right:50,Internal:5}, right panel
	// width=100, center width=700: rightUsable must be width - rightWidth -
	// margins.Right - margins.Internal = 845, which is Right-pressured
	// (center ends at 840, right starts at 850 — two margins.Internal gaps).
	// The bug this regresses dropped margins.Right from rightUsable, giving
	// 895 and falling through to Centered, which overlapped the right
	// region with no gap at all.
	b, _ := testBar(1000, 20, Margins{Right: 50, Internal: 5})
	center := &Panel{Visible: true, DrawInfo: drawInfo(700)}
	right := &Panel{Visible: true, DrawInfo: drawInfo(100)}
	b.centerPanels = append(b.centerPanels, center)
	b.rightPanels = append(b.rightPanels, right)

	err := b.redrawCenterRight(true)
	require.NoError(t, err)

	assert.Equal(t, CenterStateLeft, b.centerState)
	assert.Equal(t, int32(140), b.ext.centerStart)
	assert.Equal(t, int32(850), right.X)
	assert.LessOrEqual(t, b.ext.centerCursor+5, right.X)
}

func TestUpdatePanel_RightWithRoomStaysLocalizedToRight(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 985}
	b.rightPanels = append(b.rightPanels, p)
	b.ext.right = 985
	b.ext.centerCursor = 500

	err := b.UpdatePanel(Right, 0, drawInfo(12))
	require.NoError(t, err)
	assert.Equal(t, 1, surface.fills)
	assert.Equal(t, 1, surface.flushes)
}

func TestUpdatePanel_RightOutOfRangeIndexErrors(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	err := b.UpdatePanel(Right, 3, drawInfo(10))
	assert.Error(t, err)
}

func TestUpdatePanel_InvariantHoldsAfterFullRepaint(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	left := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 5}
	right := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 985}
	b.leftPanels = append(b.leftPanels, left)
	b.rightPanels = append(b.rightPanels, right)
	b.ext.left = 15
	b.ext.right = 985
	b.ext.centerStart = 16
	b.ext.centerCursor = 16

	err := b.UpdatePanel(Left, 0, drawInfo(900))
	require.NoError(t, err)

	assert.LessOrEqual(t, b.ext.left, b.ext.centerStart)
	assert.LessOrEqual(t, b.ext.centerStart, b.ext.centerCursor)
	assert.LessOrEqual(t, b.ext.centerCursor, b.ext.right)
	assert.LessOrEqual(t, b.ext.right, b.width)
}

func TestDispatchMouse_DeliversToHitPanel(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	send := make(chan Event, 1)
	recv := make(chan EventResponse, 1)
	p := &Panel{
		Visible:  true,
		DrawInfo: drawInfo(20),
		X:        100,
		Endpoint: NewEndpoint(send, recv),
	}
	b.leftPanels = append(b.leftPanels, p)

	b.dispatchMouse(MouseEventRaw{Detail: 1, EventX: 110, EventY: 5, SameScreen: true})

	select {
	case ev := <-send:
		require.NotNil(t, ev.Mouse)
		assert.Equal(t, MouseLeft, ev.Mouse.Button)
		assert.Equal(t, int32(10), ev.Mouse.X) // 110 - 100
	default:
		t.Fatal("expected an event to be sent to the panel endpoint")
	}
}

func TestDispatchMouse_MissNoPanelReceives(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	send := make(chan Event, 1)
	recv := make(chan EventResponse, 1)
	p := &Panel{
		Visible:  true,
		DrawInfo: drawInfo(20),
		X:        100,
		Endpoint: NewEndpoint(send, recv),
	}
	b.leftPanels = append(b.leftPanels, p)

	b.dispatchMouse(MouseEventRaw{Detail: 1, EventX: 500, EventY: 5, SameScreen: true})

	select {
	case <-send:
		t.Fatal("no panel should have received the event")
	default:
	}
}

func TestDispatchMouse_NoEndpointDropsSilently(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	p := &Panel{Visible: true, DrawInfo: drawInfo(20), X: 100}
	b.leftPanels = append(b.leftPanels, p)

	assert.NotPanics(t, func() {
		b.dispatchMouse(MouseEventRaw{Detail: 1, EventX: 110, EventY: 5, SameScreen: true})
	})
}
