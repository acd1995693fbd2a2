package panels

import (
	"fmt"

	"github.com/BurntSushi/toml"

	barpkg "github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/common"
)

// CommonFields are the config keys every reference panel accepts, decoded
// once and shared across Parse implementations.
type CommonFields struct {
	Visible    *bool  `toml:"visible"`
	Dependence string `toml:"dependence"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	PadLeft    int32  `toml:"pad_left"`
	PadRight   int32  `toml:"pad_right"`
}

// ParseCommon decodes the fields every reference panel shares out of a raw
// subtable. The same toml.Primitive can be decoded again by the caller for
// its own panel-specific keys.
func ParseCommon(table toml.Primitive) (CommonFields, error) {
	var cf CommonFields
	if err := toml.PrimitiveDecode(table, &cf); err != nil {
		return CommonFields{}, fmt.Errorf("panels: decoding common fields: %w", err)
	}
	return cf, nil
}

// InitiallyVisible reports the panel's starting visibility, defaulting to
// true when the config omits "visible".
func (cf CommonFields) InitiallyVisible() bool {
	if cf.Visible == nil {
		return true
	}
	return *cf.Visible
}

// ParseDependence maps the "dependence" config string onto bar.Dependence,
// defaulting to DependenceNone.
func (cf CommonFields) ParseDependence() barpkg.Dependence {
	switch cf.Dependence {
	case "left":
		return barpkg.DependenceLeft
	case "right":
		return barpkg.DependenceRight
	case "both":
		return barpkg.DependenceBoth
	default:
		return barpkg.DependenceNone
	}
}

// Colors parses the "foreground"/"background" config strings, defaulting
// foreground to opaque white. hasBg reports whether a background was
// configured at all, since an unset background should never paint over
// whatever the bar already drew there.
func (cf CommonFields) Colors() (fg, bg common.Color, hasBg bool, err error) {
	fg = common.Color{Red: 255, Green: 255, Blue: 255, Alpha: 255}
	if cf.Foreground != "" {
		if fg, err = common.ParseColor(cf.Foreground); err != nil {
			return common.Color{}, common.Color{}, false, fmt.Errorf("panels: foreground: %w", err)
		}
	}
	if cf.Background != "" {
		if bg, err = common.ParseColor(cf.Background); err != nil {
			return common.Color{}, common.Color{}, false, fmt.Errorf("panels: background: %w", err)
		}
		hasBg = true
	}
	return fg, bg, hasBg, nil
}

// DrawLabel builds the DrawFn every reference panel uses: optionally paint
// a background across the panel's full measured width, then draw text
// inset by padLeft, vertically centered.
func DrawLabel(text string, fg, bg common.Color, hasBg bool, padLeft, padRight int32) barpkg.DrawFn {
	return func(ctx *barpkg.DrawContext, originX int32) error {
		if hasBg {
			width := ctx.Surface.TextWidth(text) + padLeft + padRight
			ctx.Surface.FillRect(originX, 0, width, ctx.Surface.Height(), bg)
		}
		ctx.Surface.DrawText(originX+padLeft, ctx.Surface.Height()/2, text, fg)
		return nil
	}
}

// MeasureLabel returns the width a DrawLabel DrawFn for text will occupy.
func MeasureLabel(measure barpkg.TextMeasurer, text string, padLeft, padRight int32) int32 {
	return measure.TextWidth(text) + padLeft + padRight
}
