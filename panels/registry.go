// Package panels defines the registration contract third-party panel types
// implement to plug into a bar, plus the three reference implementations
// (clock, custom, watchfile) shipped alongside it.
package panels

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	barpkg "github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/config"
)

// Factory parses one panel's config subtable into a ready-to-run
// PanelConfig. name is the key the panel was registered under in its
// region's list; table is that panel's own subtable, still unparsed.
type Factory interface {
	Parse(name string, table toml.Primitive, global *config.Config) (PanelConfig, error)
}

// PanelConfig is a fully parsed, not-yet-running panel.
type PanelConfig interface {
	// Props returns the panel's display name and whether it starts visible.
	Props() (name string, initiallyVisible bool)

	// Run starts the panel's producer goroutine and returns its draw-info
	// stream and, if the panel accepts events, an endpoint for them. measure
	// lets the producer size each DrawInfo before the layout engine has
	// assigned it an origin. The stream is closed, and the endpoint's send
	// half is closed, when ctx is canceled.
	Run(ctx context.Context, attrs config.GlobalAttrs, height int32, measure barpkg.TextMeasurer) (<-chan *barpkg.DrawInfo, *barpkg.Endpoint, error)
}

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc func(name string, table toml.Primitive, global *config.Config) (PanelConfig, error)

// Parse implements Factory.
func (f FactoryFunc) Parse(name string, table toml.Primitive, global *config.Config) (PanelConfig, error) {
	return f(name, table, global)
}

// Registry maps a panel config's "type" key to the Factory that builds it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a Factory under typeName. Re-registering a type name
// replaces the previous Factory, which is convenient for tests but a bug in
// any other caller.
func (r *Registry) Register(typeName string, f Factory) {
	r.factories[typeName] = f
}

// Lookup returns the Factory registered for typeName.
func (r *Registry) Lookup(typeName string) (Factory, error) {
	f, ok := r.factories[typeName]
	if !ok {
		return nil, fmt.Errorf("panels: no factory registered for type %q", typeName)
	}
	return f, nil
}
