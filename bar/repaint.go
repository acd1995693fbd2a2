package bar

import "fmt"

// UpdatePanel installs a panel's freshly produced DrawInfo and chooses the
// smallest repaint scope that stays correct: a single panel's rectangle
// when its width hasn't changed, otherwise progressively wider regions
// depending on how much slack the current layout has.
func (b *Bar) UpdatePanel(region Region, idx int, draw *DrawInfo) error {
	panels := b.regionSlice(region)
	if idx < 0 || idx >= len(panels) {
		return fmt.Errorf("update_panel: index %d out of range for region %s", idx, region)
	}

	p := panels[idx]
	oldWidth := p.width()
	var newWidth int32
	if draw != nil {
		newWidth = draw.Width
	}
	delta := newWidth - oldWidth
	p.DrawInfo = draw

	switch region {
	case Left:
		if delta == 0 {
			return b.redrawOne(Left, idx)
		}
		if b.ext.left+delta+b.margins.Internal < b.ext.centerStart &&
			(b.centerState == CenterStateCenter || b.centerState == CenterStateLeft) {
			return b.redrawLeft()
		}
		return b.redrawBar()

	case Center:
		if delta == 0 {
			return b.redrawOne(Center, idx)
		}
		return b.redrawBar()

	default: // Right
		if delta == 0 {
			return b.redrawOne(Right, idx)
		}
		if b.ext.right-delta-b.margins.Internal > b.ext.centerCursor {
			return b.redrawRight(true)
		}
		leftSlack := b.ext.centerStart - b.ext.left - b.margins.Internal
		rightSlack := b.ext.right - b.ext.centerCursor - b.margins.Internal
		if leftSlack+rightSlack > delta {
			b.ext.right += delta
			return b.redrawCenterRight(true)
		}
		return b.redrawBar()
	}
}

// redrawBackground clears [startX, endX) across the bar's full height with
// the bar background, using a source composite so translucent panels never
// accumulate.
func (b *Bar) redrawBackground(startX, endX int32) {
	if endX < startX {
		endX = startX
	}
	b.surface.FillRect(startX, 0, endX-startX, b.height, b.bg)
}

// redrawOne clears exactly one panel's rectangle and redraws its content,
// without touching layout extents or running the dependence resolver. Only
// valid when the panel's width hasn't changed since its last placement.
func (b *Bar) redrawOne(region Region, idx int) error {
	panels := b.regionSlice(region)
	if idx < 0 || idx >= len(panels) {
		return fmt.Errorf("redraw_one: index %d out of range for region %s", idx, region)
	}
	p := panels[idx]
	if p.DrawInfo == nil {
		return nil
	}

	rect := p.bounds(b.height)
	b.redrawBackground(rect.X, rect.X+rect.W)
	if err := p.DrawInfo.DrawFn(&DrawContext{Surface: b.surface}, p.X); err != nil {
		b.log.WithError(err).WithField("panel", p.Name).Warn("panel draw failed")
	}
	b.surface.Flush()
	return nil
}

// redrawBar repaints the entire bar: background, then left, then
// center+right. Called on an Expose event or whenever a width change can't
// be localized to a smaller region.
func (b *Bar) redrawBar() error {
	b.log.Info("redrawing entire bar")
	b.redrawBackground(0, b.width)
	if err := b.redrawLeft(); err != nil {
		return err
	}
	return b.redrawCenterRight(false)
}

// redrawLeft re-resolves dependence and re-places every shown left panel
// from margins.Left rightward.
func (b *Bar) redrawLeft() error {
	b.redrawBackground(0, b.ext.left+b.margins.Internal)
	b.ext.left = b.margins.Left

	statuses := ResolveDependence(b.leftPanels)
	ApplyShowHideLatch(b.leftPanels, statuses, b.log)

	for i, p := range b.leftPanels {
		if statuses[i] != StatusShown || p.DrawInfo == nil {
			continue
		}
		x := b.ext.left
		p.X = x
		if err := p.DrawInfo.DrawFn(&DrawContext{Surface: b.surface}, x); err != nil {
			b.log.WithError(err).WithField("panel", p.Name).Warn("panel draw failed")
		}
		b.ext.left += p.DrawInfo.Width
	}

	b.surface.Flush()
	return nil
}

// redrawCenterRight resolves the four-way center overflow state machine,
// places center panels, then defers to redrawRight for the right region.
// standalone controls whether the center+right background is cleared here
// (false when redrawBar already cleared the whole bar).
func (b *Bar) redrawCenterRight(standalone bool) error {
	if standalone {
		b.redrawBackground(b.ext.centerStart-b.margins.Internal, b.width)
	}

	centerStatuses := ResolveDependence(b.centerPanels)
	ApplyShowHideLatch(b.centerPanels, centerStatuses, b.log)

	rightStatuses := ResolveDependence(b.rightPanels)
	ApplyShowHideLatch(b.rightPanels, rightStatuses, b.log)

	var centerWidth, rightWidth int32
	for i, p := range b.centerPanels {
		if centerStatuses[i] == StatusShown && p.DrawInfo != nil {
			centerWidth += p.DrawInfo.Width
		}
	}
	for i, p := range b.rightPanels {
		if rightStatuses[i] == StatusShown && p.DrawInfo != nil {
			rightWidth += p.DrawInfo.Width
		}
	}

	rightUsable := b.width - rightWidth - b.margins.Right - b.margins.Internal
	start, state := computeCenterStart(b.width, b.ext.left, rightUsable, centerWidth, b.margins)
	b.ext.centerStart = start
	b.ext.centerCursor = start
	b.centerState = state

	for i, p := range b.centerPanels {
		if centerStatuses[i] != StatusShown || p.DrawInfo == nil {
			continue
		}
		x := b.ext.centerCursor
		p.X = x
		if err := p.DrawInfo.DrawFn(&DrawContext{Surface: b.surface}, x); err != nil {
			b.log.WithError(err).WithField("panel", p.Name).Warn("panel draw failed")
		}
		b.ext.centerCursor += p.DrawInfo.Width
	}

	return b.redrawRightWithStatuses(standalone, rightStatuses)
}

// redrawRight re-resolves dependence for the right region and re-places its
// shown panels leftward from the bar's right edge.
func (b *Bar) redrawRight(standalone bool) error {
	statuses := ResolveDependence(b.rightPanels)
	return b.redrawRightWithStatuses(standalone, statuses)
}

func (b *Bar) redrawRightWithStatuses(standalone bool, statuses []PanelStatus) error {
	if standalone {
		b.redrawBackground(b.ext.right-b.margins.Internal, b.width)
	}

	ApplyShowHideLatch(b.rightPanels, statuses, b.log)

	var totalWidth int32
	for i, p := range b.rightPanels {
		if statuses[i] == StatusShown && p.DrawInfo != nil {
			totalWidth += p.DrawInfo.Width
		}
	}

	b.ext.right = computeRightStart(b.width, b.ext.centerCursor, totalWidth, b.margins)

	cursor := b.ext.right
	for i, p := range b.rightPanels {
		if statuses[i] != StatusShown || p.DrawInfo == nil {
			continue
		}
		p.X = cursor
		if err := p.DrawInfo.DrawFn(&DrawContext{Surface: b.surface}, cursor); err != nil {
			b.log.WithError(err).WithField("panel", p.Name).Warn("panel draw failed")
		}
		cursor += p.DrawInfo.Width
	}

	b.surface.Flush()
	return nil
}

// dispatchMouse locates the first panel (in left-center-right order) whose
// placed rectangle contains the event x, translates the event into
// panel-relative coordinates, and forwards it on the panel's endpoint. At
// most one panel ever receives the event; if it has no endpoint the event
// is dropped silently. No response is awaited. Presses with a button detail
// outside 1..=5 are ignored.
func (b *Bar) dispatchMouse(raw MouseEventRaw) {
	if raw.Detail < 1 || raw.Detail > 5 {
		return
	}
	x, y := raw.EventX, raw.EventY
	if !raw.SameScreen {
		x, y = raw.RootX, raw.RootY
	}

	for _, p := range b.allPanels() {
		if p.DrawInfo == nil {
			continue
		}
		rect := p.bounds(b.height)
		if x < rect.X || x > rect.X+rect.W {
			continue
		}
		if p.Endpoint == nil {
			return
		}
		button := decodeMouseButton(raw.Detail, b.reverseScroll)
		p.Endpoint.Send(Event{Mouse: &MouseEvent{
			Button: button,
			X:      x - p.X,
			Y:      y,
		}})
		return
	}
}
