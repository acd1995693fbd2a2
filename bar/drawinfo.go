package bar

// Dependence names the neighbor-visibility rule that decides whether a
// panel is shown based on its direct neighbors.
type Dependence int

const (
	// DependenceNone means the panel is shown whenever it is visible and
	// has a nonzero width.
	DependenceNone Dependence = iota
	// DependenceLeft hides the panel unless its left neighbor is shown.
	DependenceLeft
	// DependenceRight hides the panel unless its right neighbor is shown.
	DependenceRight
	// DependenceBoth hides the panel unless both neighbors are shown.
	DependenceBoth
)

// DrawFn draws a panel's content to the surface, having already been
// translated so that x=0 in the callback corresponds to originX on the
// surface. It must not retain ctx past return and must not mutate the
// panel's geometry.
type DrawFn func(ctx *DrawContext, originX int32) error

// LifecycleFn is the shape of a panel's optional show/hide/shutdown hooks.
type LifecycleFn func() error

// DrawContext is the borrowed handle a DrawFn uses to paint onto the shared
// surface. It must not be retained past the call that provided it.
type DrawContext struct {
	Surface Surface
}

// DrawInfo is the contract a panel returns every time it produces new
// content: dimensions, the dependence rule, and the callbacks the core
// invokes on its behalf.
type DrawInfo struct {
	Width      int32
	Height     int32
	Dependence Dependence
	DrawFn     DrawFn
	ShowFn     LifecycleFn
	HideFn     LifecycleFn
	ShutdownFn LifecycleFn
}

// PanelStatus is the resolved visibility of a panel after applying its own
// primary rule and, if dependent, its neighbors' primary rules.
type PanelStatus int

const (
	StatusShown PanelStatus = iota
	StatusZeroWidth
	// statusDependent is an internal intermediate value produced only by
	// primaryStatus; ResolveDependence always resolves it away before
	// returning.
	statusDependent
)

// fold implements the spec's "Shown ∧ Shown = Shown; any other combination =
// ZeroWidth" rule used to combine the two neighbors of a Both-dependence
// panel.
func fold(a, b PanelStatus) PanelStatus {
	if a == StatusShown && b == StatusShown {
		return StatusShown
	}
	return StatusZeroWidth
}

// primaryStatus computes a panel's status from its own fields alone,
// without consulting neighbors. A Dependent result still needs resolution
// against the panel's neighbor(s).
func primaryStatus(p *Panel) (status PanelStatus, dependence Dependence) {
	if !p.Visible {
		return StatusZeroWidth, DependenceNone
	}
	if p.DrawInfo == nil {
		return StatusZeroWidth, DependenceNone
	}
	if p.DrawInfo.Dependence == DependenceNone {
		if p.DrawInfo.Width == 0 {
			return StatusZeroWidth, DependenceNone
		}
		return StatusShown, DependenceNone
	}
	return statusDependent, p.DrawInfo.Dependence
}
