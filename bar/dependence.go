package bar

// ResolveDependence maps an ordered slice of panels in one region to their
// resolved per-index PanelStatus. The function is pure: it never reads or
// modifies layout extents, and equal inputs yield equal outputs.
//
// Dependence is deliberately not transitive: only a panel's direct
// neighbor(s) participate, and a dependent neighbor is evaluated by its own
// primary status rather than its resolved status. Transitive resolution
// would require cycle detection for no real benefit here.
func ResolveDependence(panels []*Panel) []PanelStatus {
	statuses := make([]PanelStatus, len(panels))
	for i, p := range panels {
		primary, dep := primaryStatus(p)
		if primary != statusDependent {
			statuses[i] = primary
			continue
		}
		statuses[i] = resolveDependent(panels, i, dep)
	}
	return statuses
}

// neighborPrimary returns the primary status of panels[idx], or ZeroWidth
// if idx is out of range. This is the clamp the spec requires at the edges
// of a region (index 0 with Left/Both dependence, or the last index with
// Right/Both).
func neighborPrimary(panels []*Panel, idx int) PanelStatus {
	if idx < 0 || idx >= len(panels) {
		return StatusZeroWidth
	}
	primary, _ := primaryStatus(panels[idx])
	if primary == statusDependent {
		// A dependent neighbor is evaluated by its own primary status, not
		// its resolved status: a Dependent primary never counts as Shown.
		return StatusZeroWidth
	}
	return primary
}

func resolveDependent(panels []*Panel, idx int, dep Dependence) PanelStatus {
	switch dep {
	case DependenceLeft:
		return neighborPrimary(panels, idx-1)
	case DependenceRight:
		return neighborPrimary(panels, idx+1)
	case DependenceBoth:
		return fold(neighborPrimary(panels, idx-1), neighborPrimary(panels, idx+1))
	default:
		return StatusZeroWidth
	}
}
