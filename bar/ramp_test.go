package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamp_Choose_Empty(t *testing.T) {
	r := NewRamp(nil)
	assert.Equal(t, "", r.Choose(50, 0, 100))
}

func TestRamp_Choose_ClampsBelowMin(t *testing.T) {
	r := NewRamp([]string{"a", "b", "c"})
	assert.Equal(t, "a", r.Choose(-10, 0, 100))
}

func TestRamp_Choose_ClampsAboveMax(t *testing.T) {
	r := NewRamp([]string{"a", "b", "c"})
	assert.Equal(t, "c", r.Choose(200, 0, 100))
}

func TestRamp_Choose_MidRange(t *testing.T) {
	r := NewRamp([]string{"a", "b", "c", "d"})
	// prop = 0.5 -> idx = int(0.5*4) = 2
	assert.Equal(t, "c", r.Choose(50, 0, 100))
}

func TestRamp_Choose_NoDivisionByZeroWhenMinEqualsMax(t *testing.T) {
	r := NewRamp([]string{"a", "b", "c"})
	assert.NotPanics(t, func() {
		got := r.Choose(50, 50, 50)
		assert.Equal(t, "a", got)
	})
}

func TestRamp_Choose_Boundaries(t *testing.T) {
	r := NewRamp([]string{"a", "b"})
	assert.Equal(t, "a", r.Choose(0, 0, 100))
	assert.Equal(t, "b", r.Choose(100, 0, 100))
}
