// Package scripting hosts the shared Lua namespace that activated modules
// export their commands into. The original host injected modules straight
// into a builtin namespace; here the namespace is an explicit Env owned by
// the session, so nothing outside it is ever mutated.
package scripting

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// Env wraps a single Lua state shared by every activated module.
//
// The state is not goroutine-safe; activation and script execution happen on
// the host's main thread, matching the session model.
type Env struct {
	l        *lua.LState
	injected map[string]bool
	closed   bool
}

// New returns a fresh scripting environment.
func New() *Env {
	return &Env{
		l:        lua.NewState(),
		injected: make(map[string]bool),
	}
}

// Inject binds exports as a global table under name. Injecting a name twice
// replaces the previous table, so re-activation cannot produce duplicate
// registrations.
func (e *Env) Inject(name string, exports map[string]lua.LGFunction) error {
	if e.closed {
		return fmt.Errorf("scripting: environment is closed")
	}
	if name == "" {
		return fmt.Errorf("scripting: empty module name")
	}
	mod := e.l.NewTable()
	for fname, fn := range exports {
		e.l.SetField(mod, fname, e.l.NewFunction(fn))
	}
	e.l.SetGlobal(name, mod)
	e.injected[name] = true
	return nil
}

// Injected returns the sorted names currently bound in the namespace.
func (e *Env) Injected() []string {
	names := make([]string, 0, len(e.injected))
	for name := range e.injected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is bound in the namespace.
func (e *Env) Has(name string) bool { return e.injected[name] }

// Reset removes every injected binding. Mostly useful for tests and session
// teardown; it does not unload module code.
func (e *Env) Reset() {
	for name := range e.injected {
		e.l.SetGlobal(name, lua.LNil)
		delete(e.injected, name)
	}
}

// Do runs src against the namespace.
func (e *Env) Do(src string) error {
	if e.closed {
		return fmt.Errorf("scripting: environment is closed")
	}
	if err := e.l.DoString(src); err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return nil
}

// State exposes the underlying Lua state for modules that register richer
// bindings than plain function tables.
func (e *Env) State() *lua.LState { return e.l }

// Close releases the Lua state. The Env is unusable afterwards.
func (e *Env) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.l.Close()
}
