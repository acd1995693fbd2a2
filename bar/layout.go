package bar

// Margins are the pixel gaps the layout engine leaves between the edges of
// the bar and the left/right regions, and between any two adjacent regions.
type Margins struct {
	Left     int32
	Right    int32
	Internal int32
}

// CenterState names which side the center block was nudged toward the last
// time the center/right layout ran, mirroring the four-way state machine in
// computeCenterStart.
type CenterState int

const (
	CenterStateCenter CenterState = iota
	CenterStateLeft
	CenterStateRight
	CenterStateUnknown
)

// extents is the bar's mutable layout state. Between suspension points it
// has a single writer (the main loop), so no lock is needed around it.
//
// Invariant after a successful layout pass: left <= centerStart <=
// centerCursor <= right <= width, with each gap >= margins.Internal unless
// overflow forced a collapse.
type extents struct {
	left         int32
	centerStart  int32
	centerCursor int32
	right        int32
}

// computeCenterStart resolves the four-way overflow state machine described
// in the layout engine: given the left cursor, the usable right boundary
// (the right region's raw edge minus the internal margin), the total width
// of currently-shown center panels, and the bar width, it returns where the
// center region should start and which state produced that placement.
//
// rightUsable is `width - sum(shown right widths) - margins.Right -
// margins.Internal`: the right region's raw left edge, minus one gap, the
// x-coordinate the center region must stay clear of.
func computeCenterStart(width, left, rightUsable, centerWidth int32, m Margins) (start int32, state CenterState) {
	mid := width / 2

	switch {
	case centerWidth > (rightUsable-left)-2*m.Internal:
		// Overflow: center may visibly overrun into right. Documented
		// behavior, not a bug.
		return left + m.Internal, CenterStateUnknown
	case centerWidth/2 > rightUsable-mid-m.Internal:
		// Right-pressured: push left to fit before the right region.
		return rightUsable - centerWidth - m.Internal, CenterStateLeft
	case centerWidth/2 > mid-left-m.Internal:
		// Left-pressured: push right, away from a wide left region.
		return left + m.Internal, CenterStateRight
	default:
		return mid - centerWidth/2, CenterStateCenter
	}
}

// computeRightStart resolves where the right region should begin once the
// center region's cursor is known, clamping so the right region never
// starts before the center region ends plus one gap. On violation the right
// region is pushed against the center and may be clipped; that is
// non-fatal.
func computeRightStart(width, centerCursor, totalRightWidth int32, m Margins) int32 {
	total := totalRightWidth + m.Right
	if total > width-centerCursor-m.Internal {
		return centerCursor + m.Internal
	}
	return width - total
}
