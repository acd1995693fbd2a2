// Package watchfile implements a panel that re-reads and re-emits a file's
// trimmed contents every time fsnotify reports a write to it, the
// file-watcher async source type named alongside the timer and command
// sources.
package watchfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	barpkg "github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/config"
	"github.com/edgebar/edgebar/panels"
)

// RegisterWatchFile registers the watchfile panel type under "watchfile".
func RegisterWatchFile(r *panels.Registry) {
	r.Register("watchfile", panels.FactoryFunc(parse))
}

type watchFileConfig struct {
	name   string
	path   string
	common panels.CommonFields
}

type rawConfig struct {
	Path string `toml:"path"`
}

func parse(name string, table toml.Primitive, _ *config.Config) (panels.PanelConfig, error) {
	common, err := panels.ParseCommon(table)
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := toml.PrimitiveDecode(table, &raw); err != nil {
		return nil, fmt.Errorf("watchfile: decoding config: %w", err)
	}
	if raw.Path == "" {
		return nil, fmt.Errorf("watchfile: panel %q requires a path", name)
	}

	return &watchFileConfig{name: name, path: raw.Path, common: common}, nil
}

func (w *watchFileConfig) Props() (string, bool) {
	return w.name, w.common.InitiallyVisible()
}

func (w *watchFileConfig) Run(ctx context.Context, _ config.GlobalAttrs, height int32, measure barpkg.TextMeasurer) (<-chan *barpkg.DrawInfo, *barpkg.Endpoint, error) {
	fg, bg, hasBg, err := w.common.Colors()
	if err != nil {
		return nil, nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("watchfile: creating watcher: %w", err)
	}
	if err := watcher.Add(w.path); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watchfile: watching %s: %w", w.path, err)
	}

	out := make(chan *barpkg.DrawInfo)

	go func() {
		defer close(out)
		defer watcher.Close()

		emit := func() {
			text := w.readTrimmed()
			draw := &barpkg.DrawInfo{
				Width:      panels.MeasureLabel(measure, text, w.common.PadLeft, w.common.PadRight),
				Height:     height,
				Dependence: w.common.ParseDependence(),
				DrawFn:     panels.DrawLabel(text, fg, bg, hasBg, w.common.PadLeft, w.common.PadRight),
			}
			select {
			case out <- draw:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					emit()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil, nil
}

func (w *watchFileConfig) readTrimmed() string {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
