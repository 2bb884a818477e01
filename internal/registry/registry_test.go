package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoriumgroup/thorium/internal/host"
)

type stubModule struct {
	name string
}

func (m *stubModule) Info() Info {
	return Info{Name: m.name, Version: "0.1"}
}

func (m *stubModule) Register(ctx context.Context, session *host.Session) error {
	return nil
}

func TestRegistry_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := New()

	// --- Act ---
	reg.Register(&stubModule{name: "viewersync"})
	reg.Register(&stubModule{name: "animatedsnap"})
	reg.Register(&stubModule{name: "keying"})

	// --- Assert ---
	require.Equal(t, []string{"viewersync", "animatedsnap", "keying"}, reg.Names(),
		"Names() must preserve registration order, not sort")
	require.Equal(t, 3, reg.Len())
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	reg := New()
	mod := &stubModule{name: "keying"}
	reg.Register(mod)

	got, ok := reg.Get("keying")
	require.True(t, ok)
	require.Same(t, mod, got)

	_, ok = reg.Get("nope")
	require.False(t, ok, "unregistered names must not resolve")
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	t.Parallel()

	// A name collision is a programmer error in the compiled-in module
	// list, not a runtime condition.
	reg := New()
	reg.Register(&stubModule{name: "keying"})

	require.Panics(t, func() {
		reg.Register(&stubModule{name: "keying"})
	})
}

func TestRegistry_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	reg := New()
	require.Panics(t, func() {
		reg.Register(&stubModule{name: ""})
	})
}
