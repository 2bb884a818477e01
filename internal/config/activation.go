package config

// Activation decides which modules load this session. Names absent from
// Modules fall back to Default. Keys that match no known module are
// harmless; the activator ignores them.
type Activation struct {
	Default bool
	Modules map[string]bool
}

// DefaultActivation enables every module, the shipping behavior.
func DefaultActivation() Activation {
	return Activation{Default: true}
}

// Enabled reports whether the named module should activate.
func (a Activation) Enabled(name string) bool {
	if v, ok := a.Modules[name]; ok {
		return v
	}
	return a.Default
}
