package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanelVisibilityCommand_Valid(t *testing.T) {
	cases := []struct {
		in     string
		region Region
		idx    int
		verb   string
	}{
		{"l3.hide", Left, 3, "hide"},
		{"c0.show", Center, 0, "show"},
		{"r12.toggle", Right, 12, "toggle"},
	}
	for _, tc := range cases {
		region, idx, verb, ok := parsePanelVisibilityCommand(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.region, region)
		assert.Equal(t, tc.idx, idx)
		assert.Equal(t, tc.verb, verb)
	}
}

func TestParsePanelVisibilityCommand_Invalid(t *testing.T) {
	cases := []string{
		"",
		"l.hide",    // no index
		"x3.hide",   // bad region letter
		"l-1.hide",  // negative index
		"lhide",     // no dot at all
		"l3",        // no verb
		"labc.hide", // non-numeric index
	}
	for _, in := range cases {
		_, _, _, ok := parsePanelVisibilityCommand(in)
		assert.False(t, ok, in)
	}
}

func TestHandleBarCommand_Quit(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	reply := make(chan EventResponse, 1)
	quit := b.handleBarCommand("quit", reply)
	assert.True(t, quit)
	assert.True(t, (<-reply).Ok())
}

func TestHandleBarCommand_ShowHideToggle(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	b.mapped = true
	reply := make(chan EventResponse, 1)

	quit := b.handleBarCommand("toggle", reply) // mapped -> hides
	assert.False(t, quit)
	assert.True(t, (<-reply).Ok())
	assert.False(t, b.mapped)

	quit = b.handleBarCommand("toggle", reply) // hidden -> shows
	assert.False(t, quit)
	assert.True(t, (<-reply).Ok())
	assert.True(t, b.mapped)
}

func TestHandleBarCommand_Unrecognized(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	reply := make(chan EventResponse, 1)
	quit := b.handleBarCommand("frobnicate", reply)
	assert.False(t, quit)
	resp := <-reply
	assert.False(t, resp.Ok())
	assert.Contains(t, resp.Err, "frobnicate")
}

func TestHandlePanelVisibility_AppliesVerbAndRepaints(t *testing.T) {
	b, surface := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: false, DrawInfo: drawInfo(10), X: 5}
	b.leftPanels = append(b.leftPanels, p)

	b.handlePanelVisibility("l0.show")
	assert.True(t, p.Visible)
	assert.GreaterOrEqual(t, surface.flushes, 1)
}

func TestHandlePanelAddressed_NoSuchPanel(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	reply := make(chan EventResponse, 1)
	b.handlePanelAddressed("nonexistent", "refresh", reply)
	resp := <-reply
	assert.False(t, resp.Ok())
	assert.Contains(t, resp.Err, "nonexistent")
}

func TestHandlePanelAddressed_AmbiguousName(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	b.leftPanels = append(b.leftPanels,
		&Panel{Name: "dup", DrawInfo: drawInfo(1)},
		&Panel{Name: "dup", DrawInfo: drawInfo(1)},
	)
	reply := make(chan EventResponse, 1)
	b.handlePanelAddressed("dup", "refresh", reply)
	resp := <-reply
	assert.False(t, resp.Ok())
	assert.Contains(t, resp.Err, "multiple instances")
}

func TestHandlePanelAddressed_NoEndpoint(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	b.leftPanels = append(b.leftPanels, &Panel{Name: "solo", DrawInfo: drawInfo(1)})
	reply := make(chan EventResponse, 1)
	b.handlePanelAddressed("solo", "refresh", reply)
	resp := <-reply
	assert.False(t, resp.Ok())
	assert.Contains(t, resp.Err, "no endpoint")
}

func TestHandlePanelAddressed_DeliversAndRelaysReply(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	send := make(chan Event, 1)
	recv := make(chan EventResponse, 1)
	p := &Panel{Name: "clk", DrawInfo: drawInfo(1), Endpoint: NewEndpoint(send, recv)}
	b.leftPanels = append(b.leftPanels, p)

	reply := make(chan EventResponse, 1)
	b.handlePanelAddressed("clk", "refresh", reply)

	ev := <-send
	assert.Equal(t, "refresh", ev.Action)
	recv <- EventResponse{}

	resp := <-reply
	assert.True(t, resp.Ok())
}

func TestHandleIPCRequest_DispatchesVisibilityDialect(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{Left: 5, Right: 5, Internal: 2})
	p := &Panel{Visible: true, DrawInfo: drawInfo(10), X: 5}
	b.leftPanels = append(b.leftPanels, p)

	reply := make(chan EventResponse, 1)
	quit := b.handleIPCRequest(IPCRequest{Line: "#l0.hide", Reply: reply})
	assert.False(t, quit)
	assert.True(t, (<-reply).Ok())
	assert.False(t, p.Visible)
}

func TestHandleIPCRequest_DispatchesBarCommand(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	reply := make(chan EventResponse, 1)
	quit := b.handleIPCRequest(IPCRequest{Line: "quit", Reply: reply})
	assert.True(t, quit)
}

func TestHandleIPCRequest_DispatchesPanelAddressedDialect(t *testing.T) {
	b, _ := testBar(1000, 20, Margins{})
	send := make(chan Event, 1)
	recv := make(chan EventResponse, 1)
	p := &Panel{Name: "vol", DrawInfo: drawInfo(1), Endpoint: NewEndpoint(send, recv)}
	b.leftPanels = append(b.leftPanels, p)

	reply := make(chan EventResponse, 1)
	quit := b.handleIPCRequest(IPCRequest{Line: "vol.mute", Reply: reply})
	assert.False(t, quit)

	ev := <-send
	assert.Equal(t, "mute", ev.Action)
	recv <- EventResponse{}
	assert.True(t, (<-reply).Ok())
}
