package panels

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/common"
)

func decodePrimitive(t *testing.T, body string) toml.Primitive {
	t.Helper()
	var doc struct {
		Panel toml.Primitive `toml:"panel"`
	}
	_, err := toml.Decode(body, &doc)
	require.NoError(t, err)
	return doc.Panel
}

func TestParseCommon_Defaults(t *testing.T) {
	prim := decodePrimitive(t, "[panel]\n")
	cf, err := ParseCommon(prim)
	require.NoError(t, err)
	assert.True(t, cf.InitiallyVisible())
	assert.Equal(t, bar.DependenceNone, cf.ParseDependence())
}

func TestParseCommon_VisibleFalse(t *testing.T) {
	prim := decodePrimitive(t, "[panel]\nvisible = false\n")
	cf, err := ParseCommon(prim)
	require.NoError(t, err)
	assert.False(t, cf.InitiallyVisible())
}

func TestParseCommon_Dependence(t *testing.T) {
	cases := map[string]bar.Dependence{
		"left":       bar.DependenceLeft,
		"right":      bar.DependenceRight,
		"both":       bar.DependenceBoth,
		"garbage":    bar.DependenceNone,
		"":           bar.DependenceNone,
	}
	for raw, want := range cases {
		body := "[panel]\n"
		if raw != "" {
			body += "dependence = \"" + raw + "\"\n"
		}
		prim := decodePrimitive(t, body)
		cf, err := ParseCommon(prim)
		require.NoError(t, err)
		assert.Equal(t, want, cf.ParseDependence(), raw)
	}
}

func TestColors_DefaultsToOpaqueWhiteForeground(t *testing.T) {
	cf := CommonFields{}
	fg, _, hasBg, err := cf.Colors()
	require.NoError(t, err)
	assert.Equal(t, common.Color{Red: 255, Green: 255, Blue: 255, Alpha: 255}, fg)
	assert.False(t, hasBg)
}

func TestColors_ParsesConfiguredValues(t *testing.T) {
	cf := CommonFields{Foreground: "#00ff00", Background: "#0000ff"}
	fg, bg, hasBg, err := cf.Colors()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), fg.Green)
	assert.Equal(t, uint8(255), bg.Blue)
	assert.True(t, hasBg)
}

func TestColors_InvalidForegroundErrors(t *testing.T) {
	cf := CommonFields{Foreground: "not-a-color"}
	_, _, _, err := cf.Colors()
	assert.Error(t, err)
}

type fakeMeasurer struct{ perChar int32 }

func (f fakeMeasurer) TextWidth(text string) int32 { return int32(len(text)) * f.perChar }

func TestMeasureLabel_IncludesPadding(t *testing.T) {
	m := fakeMeasurer{perChar: 5}
	got := MeasureLabel(m, "abc", 2, 3)
	assert.Equal(t, int32(3*5+2+3), got)
}

type recordingSurface struct {
	fakeMeasurer
	height     int32
	fillCalls  []common.Color
	drawCalls  []string
	drawXCalls []int32
}

func (s *recordingSurface) Width() int32  { return 0 }
func (s *recordingSurface) Height() int32 { return s.height }
func (s *recordingSurface) FillRect(x, y, w, h int32, c common.Color) {
	s.fillCalls = append(s.fillCalls, c)
}
func (s *recordingSurface) DrawText(x, y int32, text string, c common.Color) {
	s.drawCalls = append(s.drawCalls, text)
	s.drawXCalls = append(s.drawXCalls, x)
}
func (s *recordingSurface) Flush()                     {}
func (s *recordingSurface) Map()                       {}
func (s *recordingSurface) Unmap()                      {}
func (s *recordingSurface) Events() <-chan bar.WindowEvent { return nil }
func (s *recordingSurface) Close() error               { return nil }

var _ bar.Surface = (*recordingSurface)(nil)

func TestDrawLabel_PaintsBackgroundOnlyWhenConfigured(t *testing.T) {
	surface := &recordingSurface{fakeMeasurer: fakeMeasurer{perChar: 1}, height: 20}
	fn := DrawLabel("hi", common.Color{}, common.Color{Red: 9}, true, 1, 1)
	err := fn(&bar.DrawContext{Surface: surface}, 100)
	require.NoError(t, err)
	require.Len(t, surface.fillCalls, 1)
	assert.Equal(t, uint8(9), surface.fillCalls[0].Red)
	require.Len(t, surface.drawCalls, 1)
	assert.Equal(t, "hi", surface.drawCalls[0])
	assert.Equal(t, int32(101), surface.drawXCalls[0]) // originX + padLeft
}

func TestDrawLabel_NoBackgroundSkipsFill(t *testing.T) {
	surface := &recordingSurface{fakeMeasurer: fakeMeasurer{perChar: 1}, height: 20}
	fn := DrawLabel("hi", common.Color{}, common.Color{}, false, 0, 0)
	err := fn(&bar.DrawContext{Surface: surface}, 0)
	require.NoError(t, err)
	assert.Empty(t, surface.fillCalls)
}
