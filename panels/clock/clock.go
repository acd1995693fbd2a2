// Package clock implements a fixed-width, timer-driven panel that formats
// the current time.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	barpkg "github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/config"
	"github.com/edgebar/edgebar/panels"
)

// RegisterClock registers the clock panel type under "clock".
func RegisterClock(r *panels.Registry) {
	r.Register("clock", panels.FactoryFunc(parse))
}

type clockConfig struct {
	name   string
	format string
	period time.Duration
	common panels.CommonFields
}

type rawConfig struct {
	Format   string `toml:"format"`
	Interval int64  `toml:"interval"`
}

func parse(name string, table toml.Primitive, _ *config.Config) (panels.PanelConfig, error) {
	common, err := panels.ParseCommon(table)
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := toml.PrimitiveDecode(table, &raw); err != nil {
		return nil, fmt.Errorf("clock: decoding config: %w", err)
	}

	format := raw.Format
	if format == "" {
		format = "15:04:05"
	}
	period := time.Second
	if raw.Interval > 0 {
		period = time.Duration(raw.Interval) * time.Second
	}

	return &clockConfig{name: name, format: format, period: period, common: common}, nil
}

func (c *clockConfig) Props() (string, bool) {
	return c.name, c.common.InitiallyVisible()
}

func (c *clockConfig) Run(ctx context.Context, _ config.GlobalAttrs, height int32, measure barpkg.TextMeasurer) (<-chan *barpkg.DrawInfo, *barpkg.Endpoint, error) {
	fg, bg, hasBg, err := c.common.Colors()
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *barpkg.DrawInfo)

	go func() {
		defer close(out)

		ticker := time.NewTicker(c.period)
		defer ticker.Stop()

		emit := func() {
			text := time.Now().Format(c.format)
			draw := &barpkg.DrawInfo{
				Width:      panels.MeasureLabel(measure, text, c.common.PadLeft, c.common.PadRight),
				Height:     height,
				Dependence: c.common.ParseDependence(),
				DrawFn:     panels.DrawLabel(text, fg, bg, hasBg, c.common.PadLeft, c.common.PadRight),
			}
			select {
			case out <- draw:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case <-ticker.C:
				emit()
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil, nil
}
