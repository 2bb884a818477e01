package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thoriumgroup/thorium/internal/host"
)

// Info describes a module to the activator and to users.
type Info struct {
	Name        string
	Version     string
	Description string
}

// Module is one plugin in the suite. Register runs during the headless
// activation pass and must leave the session usable even when it fails.
type Module interface {
	Info() Info
	Register(ctx context.Context, session *host.Session) error
}

// GUIModule is implemented by modules that contribute menu entries. The
// activator calls RegisterGUI only in interactive sessions, after Register.
type GUIModule interface {
	Module
	RegisterGUI(ctx context.Context, session *host.Session) error
}

// Registry is the ordered master list of known modules.
type Registry struct {
	order   []string
	modules map[string]Module
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module. Registering a name twice is a programmer error in
// the compiled-in module table, so it panics.
func (r *Registry) Register(m Module) {
	name := m.Info().Name
	if name == "" {
		panic("registry: module with empty name")
	}
	if _, exists := r.modules[name]; exists {
		panic(fmt.Sprintf("registry: module %q already registered", name))
	}
	slog.Debug("Registering module.", "name", name)
	r.order = append(r.order, name)
	r.modules[name] = m
}

// Names returns the registered module names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the named module.
func (r *Registry) Get(name string) (Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Len returns the number of registered modules.
func (r *Registry) Len() int { return len(r.order) }
