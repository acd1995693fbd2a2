// Package custom implements a panel that runs a shell command, once or on
// an interval, and displays its trimmed stdout/stderr through a format
// string. It is the idiomatic-Go counterpart of the original's Custom
// panel: no builder macro, just a parse function that reads the panel's
// TOML subtable.
package custom

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	barpkg "github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/config"
	"github.com/edgebar/edgebar/panels"
)

// RegisterCustom registers the custom panel type under "custom".
func RegisterCustom(r *panels.Registry) {
	r.Register("custom", panels.FactoryFunc(parse))
}

type customConfig struct {
	name     string
	command  string
	format   string
	interval time.Duration // zero means "run once"
	common   panels.CommonFields
}

type rawConfig struct {
	Command  string `toml:"command"`
	Format   string `toml:"format"`
	Interval int64  `toml:"interval"`
}

// parse reads "command", "interval", and "format":
//
//   - command: the command to run with sh -c <command>. Required.
//   - interval: seconds between runs. If absent, the command runs exactly
//     once.
//   - format: the output format string. Defaults to "%stdout%". Supports
//     %stdout% and %stderr%.
func parse(name string, table toml.Primitive, _ *config.Config) (panels.PanelConfig, error) {
	common, err := panels.ParseCommon(table)
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := toml.PrimitiveDecode(table, &raw); err != nil {
		return nil, fmt.Errorf("custom: decoding config: %w", err)
	}
	if raw.Command == "" {
		return nil, fmt.Errorf("custom: panel %q requires a command", name)
	}

	format := raw.Format
	if format == "" {
		format = "%stdout%"
	}

	var interval time.Duration
	if raw.Interval > 0 {
		interval = time.Duration(raw.Interval) * time.Second
	}

	return &customConfig{
		name:     name,
		command:  raw.Command,
		format:   format,
		interval: interval,
		common:   common,
	}, nil
}

func (c *customConfig) Props() (string, bool) {
	return c.name, c.common.InitiallyVisible()
}

func (c *customConfig) Run(ctx context.Context, _ config.GlobalAttrs, height int32, measure barpkg.TextMeasurer) (<-chan *barpkg.DrawInfo, *barpkg.Endpoint, error) {
	fg, bg, hasBg, err := c.common.Colors()
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *barpkg.DrawInfo)

	go func() {
		defer close(out)

		emit := func() {
			text := c.runOnce(ctx)
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
		if c.interval == 0 {
			return
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
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

// runOnce executes the configured command and substitutes its output into
// the format string. A command failure does not abort the panel: the error
// is ignored and whatever the command wrote before failing (often nothing)
// is substituted.
func (c *customConfig) runOnce(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "sh", "-c", c.command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	_ = cmd.Run()

	text := c.format
	text = strings.ReplaceAll(text, "%stdout%", strings.TrimSpace(stdout.String()))
	text = strings.ReplaceAll(text, "%stderr%", strings.TrimSpace(stderr.String()))
	return strings.TrimSpace(text)
}
