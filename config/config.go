// Package config loads the TOML file that describes a bar: its own
// geometry and behavior, the ordered panels in each region, and the named
// icon ramps panels can draw from.
package config

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/common"
)

// BarConfig holds the bar-level settings read from the top-level table of
// the config file.
type BarConfig struct {
	Name          string       `toml:"name"`
	Monitor       string       `toml:"monitor"`
	Position      string       `toml:"position"`
	Height        int32        `toml:"height"`
	Background    string       `toml:"background"`
	Transparent   bool         `toml:"transparent"`
	ReverseScroll bool         `toml:"reverse_scroll"`
	IPC           bool         `toml:"ipc"`
	Margins       bar.Margins  `toml:"margins"`
}

// PanelConfig is one entry in a region's panel list: the name it registers
// under, which panel type built it, and its own subtable deferred for the
// matching Factory to finish parsing.
type PanelConfig struct {
	Name  string
	Type  string
	Table toml.Primitive
}

// Config is the fully parsed document: bar-level settings, the ordered
// panel list per region, and the named ramps available to every panel.
type Config struct {
	Bar    BarConfig
	Left   []PanelConfig
	Center []PanelConfig
	Right  []PanelConfig
	Ramps  map[string]bar.Ramp
}

// GlobalAttrs is the subset of Config a panel's Run method needs: shared,
// read-only context that doesn't require the panel to know about the rest
// of the document.
type GlobalAttrs struct {
	Ramps map[string]bar.Ramp
}

// Attrs projects the parts of Config a panel is allowed to depend on.
func (c *Config) Attrs() GlobalAttrs {
	return GlobalAttrs{Ramps: c.Ramps}
}

// Background parses the bar's configured background color.
func (c *Config) Background() (common.Color, error) {
	if c.Bar.Background == "" {
		return common.Color{Alpha: 255}, nil
	}
	return common.ParseColor(c.Bar.Background)
}

type rawDocument struct {
	Name          string                    `toml:"name"`
	Monitor       string                    `toml:"monitor"`
	Position      string                    `toml:"position"`
	Height        int32                     `toml:"height"`
	Background    string                    `toml:"background"`
	Transparent   bool                      `toml:"transparent"`
	ReverseScroll bool                      `toml:"reverse_scroll"`
	IPC           bool                      `toml:"ipc"`
	Margins       bar.Margins               `toml:"margins"`
	Left          []rawPanel                `toml:"left"`
	Center        []rawPanel                `toml:"center"`
	Right         []rawPanel                `toml:"right"`
	Ramps         map[string]toml.Primitive `toml:"ramps"`
}

type rawPanel struct {
	Name  string         `toml:"name"`
	Type  string         `toml:"type"`
	Table toml.Primitive `toml:",inline"`
}

// Load parses path as a bar config document. Each panel's own keys are
// deferred as a toml.Primitive; only its name and type are read here, so a
// new panel type never requires changes to this package.
func Load(path string) (*Config, error) {
	var doc rawDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	cfg := &Config{
		Bar: BarConfig{
			Name:          doc.Name,
			Monitor:       doc.Monitor,
			Position:      doc.Position,
			Height:        doc.Height,
			Background:    doc.Background,
			Transparent:   doc.Transparent,
			ReverseScroll: doc.ReverseScroll,
			IPC:           doc.IPC,
			Margins:       doc.Margins,
		},
		Left:   toPanelConfigs(doc.Left),
		Center: toPanelConfigs(doc.Center),
		Right:  toPanelConfigs(doc.Right),
		Ramps:  make(map[string]bar.Ramp, len(doc.Ramps)),
	}

	for name, primitive := range doc.Ramps {
		ramp, err := parseRamp(primitive)
		if err != nil {
			return nil, fmt.Errorf("config: ramp %q: %w", name, err)
		}
		cfg.Ramps[name] = ramp
	}

	return cfg, nil
}

func toPanelConfigs(raw []rawPanel) []PanelConfig {
	out := make([]PanelConfig, len(raw))
	for i, p := range raw {
		out[i] = PanelConfig{Name: p.Name, Type: p.Type, Table: p.Table}
	}
	return out
}

// parseRamp walks consecutive integer-string keys ("0", "1", ...) in a ramp
// subtable until the first gap, matching the original's table-of-strings
// ramp format.
func parseRamp(primitive toml.Primitive) (bar.Ramp, error) {
	var table map[string]string
	if err := toml.PrimitiveDecode(primitive, &table); err != nil {
		return bar.Ramp{}, err
	}

	var icons []string
	for i := 0; ; i++ {
		icon, ok := table[strconv.Itoa(i)]
		if !ok {
			break
		}
		icons = append(icons, icon)
	}
	return bar.NewRamp(icons), nil
}
