package bar

import (
	"fmt"
	"strconv"
	"strings"
)

// handleIPCRequest dispatches one IPC line to one of three grammars and
// always sends exactly one EventResponse on req.Reply (synchronously,
// except for panel-addressed commands which reply asynchronously once the
// target panel answers). It reports whether the bar should quit.
//
//   - "#<region><index>.<verb>" — panel visibility command, answered inline
//   - "<name>.<action>"         — panel-addressed message, answered by the
//     panel itself via its Endpoint
//   - anything else             — a bar-level command (quit/show/hide/toggle)
func (b *Bar) handleIPCRequest(req IPCRequest) (quit bool) {
	line := req.Line

	if strings.HasPrefix(line, "#") {
		b.handlePanelVisibility(line[1:])
		req.Reply <- EventResponse{}
		return false
	}

	if dot := strings.IndexByte(line, '.'); dot > 0 {
		name := line[:dot]
		action := line[dot+1:]
		b.handlePanelAddressed(name, action, req.Reply)
		return false
	}

	return b.handleBarCommand(line, req.Reply)
}

func (b *Bar) handleBarCommand(cmd string, reply chan<- EventResponse) bool {
	switch cmd {
	case "quit":
		reply <- EventResponse{}
		return true
	case "show":
		b.surface.Map()
		b.mapped = true
		b.showPanels()
		reply <- EventResponse{}
		return false
	case "hide":
		b.surface.Unmap()
		b.mapped = false
		b.hidePanels()
		reply <- EventResponse{}
		return false
	case "toggle":
		if b.mapped {
			return b.handleBarCommand("hide", reply)
		}
		return b.handleBarCommand("show", reply)
	default:
		reply <- EventResponse{Err: fmt.Sprintf("unrecognized bar command %q", cmd)}
		return false
	}
}

// handlePanelVisibility applies a show/hide/toggle to one panel by region
// and index, then repaints only the affected region.
func (b *Bar) handlePanelVisibility(cmd string) {
	region, idx, verb, ok := parsePanelVisibilityCommand(cmd)
	if !ok {
		return
	}
	panels := b.regionSlice(region)
	if idx < 0 || idx >= len(panels) {
		return
	}
	p := panels[idx]

	switch verb {
	case "show":
		p.Visible = true
	case "hide":
		p.Visible = false
	case "toggle":
		p.Visible = !p.Visible
	default:
		return
	}

	var err error
	switch region {
	case Left:
		err = b.redrawLeft()
	case Center:
		err = b.redrawCenterRight(true)
	default:
		err = b.redrawRight(true)
	}
	if err != nil {
		b.log.WithError(err).Warn("repaint after panel visibility command failed")
	}
}

// parsePanelVisibilityCommand parses "<region-letter><index>.<verb>", e.g.
// "l3.hide", into its parts.
func parsePanelVisibilityCommand(s string) (region Region, idx int, verb string, ok bool) {
	dot := strings.IndexByte(s, '.')
	if dot < 2 {
		return 0, 0, "", false
	}
	head := s[:dot]
	verb = s[dot+1:]

	region, ok = regionFromLetter(head[0])
	if !ok {
		return 0, 0, "", false
	}

	n, err := strconv.Atoi(head[1:])
	if err != nil || n < 0 {
		return 0, 0, "", false
	}
	return region, n, verb, true
}

// handlePanelAddressed looks up the single panel named name across all
// three regions and forwards action to its endpoint, replying once the
// panel answers. The lookup runs synchronously and lookup errors are
// answered at once; the send and the wait for the panel's reply happen in a
// detached goroutine so a slow or wedged panel never blocks the main loop.
func (b *Bar) handlePanelAddressed(name, action string, reply chan<- EventResponse) {
	var target *Panel
	count := 0
	for _, p := range b.allPanels() {
		if p.Name == name {
			target = p
			count++
		}
	}

	switch {
	case count == 0:
		reply <- EventResponse{Err: fmt.Sprintf("no panel named %s", name)}
		return
	case count > 1:
		reply <- EventResponse{Err: "This panel has multiple instances and cannot be messaged"}
		return
	case target.Endpoint == nil:
		reply <- EventResponse{Err: "panel has no endpoint"}
		return
	}

	endpoint := target.Endpoint
	go func() {
		endpoint.Send(Event{Action: action})
		reply <- endpoint.Recv()
	}()
}
