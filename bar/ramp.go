package bar

// Ramp maps a numeric value in a range to one of a fixed sequence of icon
// strings, e.g. a battery or volume glyph. It has no side effects and holds
// no reference to the panel that owns it.
type Ramp struct {
	icons []string
}

// NewRamp builds a Ramp from an ordered icon list. An empty list is valid:
// Choose always returns "" for it.
func NewRamp(icons []string) Ramp {
	return Ramp{icons: icons}
}

// Choose returns the icon for value within [min, max], clamping value into
// that range first and clamping the resulting index into [0, n-1]. It
// returns "" when the ramp has no icons. When min == max there is no
// division by zero: every value maps to the first icon.
func (r Ramp) Choose(value, min, max float64) string {
	n := len(r.icons)
	if n == 0 {
		return ""
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	span := max - min
	var prop float64
	if span != 0 {
		prop = (value - min) / span
	}
	idx := int(prop * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return r.icons[idx]
}
