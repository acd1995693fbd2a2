package bar

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discardWriter{})
	return log
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestApplyShowHideLatch_FiresOnlyOnTransitions(t *testing.T) {
	var shown, hidden int
	di := &DrawInfo{
		Width:  1,
		ShowFn: func() error { shown++; return nil },
		HideFn: func() error { hidden++; return nil },
	}
	p := &Panel{DrawInfo: di}
	panels := []*Panel{p}

	// First pass: was hidden (lastStatus false), now shown -> ShowFn fires.
	ApplyShowHideLatch(panels, []PanelStatus{StatusShown}, silentLogger())
	assert.Equal(t, 1, shown)
	assert.Equal(t, 0, hidden)

	// Second pass: still shown -> no hook fires again.
	ApplyShowHideLatch(panels, []PanelStatus{StatusShown}, silentLogger())
	assert.Equal(t, 1, shown)
	assert.Equal(t, 0, hidden)

	// Third pass: transitions to hidden -> HideFn fires once.
	ApplyShowHideLatch(panels, []PanelStatus{StatusZeroWidth}, silentLogger())
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, hidden)

	// Fourth pass: still hidden -> no further hook fires.
	ApplyShowHideLatch(panels, []PanelStatus{StatusZeroWidth}, silentLogger())
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, hidden)
}

func TestApplyShowHideLatch_NilDrawInfoSkipped(t *testing.T) {
	p := &Panel{DrawInfo: nil}
	assert.NotPanics(t, func() {
		ApplyShowHideLatch([]*Panel{p}, []PanelStatus{StatusShown}, silentLogger())
	})
}

func TestApplyShowHideLatch_HookErrorIsSwallowed(t *testing.T) {
	di := &DrawInfo{
		Width:  1,
		ShowFn: func() error { return errors.New("boom") },
	}
	p := &Panel{DrawInfo: di}
	assert.NotPanics(t, func() {
		ApplyShowHideLatch([]*Panel{p}, []PanelStatus{StatusShown}, silentLogger())
	})
}

func TestApplyShowHideLatch_NilHooksAreNoop(t *testing.T) {
	di := &DrawInfo{Width: 1}
	p := &Panel{DrawInfo: di}
	assert.NotPanics(t, func() {
		ApplyShowHideLatch([]*Panel{p}, []PanelStatus{StatusShown}, silentLogger())
		ApplyShowHideLatch([]*Panel{p}, []PanelStatus{StatusZeroWidth}, silentLogger())
	})
}
