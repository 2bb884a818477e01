package scripting

import (
	"testing"

	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func TestEnv_InjectAndCall(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	env := New()
	defer env.Close()

	called := 0
	err := env.Inject("keying", map[string]lua.LGFunction{
		"spillsuppress": func(L *lua.LState) int {
			called++
			return 0
		},
	})
	require.NoError(t, err)

	// --- Act / Assert ---
	require.True(t, env.Has("keying"))
	require.NoError(t, env.Do("keying.spillsuppress()"))
	require.Equal(t, 1, called)
}

func TestEnv_ReinjectReplaces(t *testing.T) {
	t.Parallel()

	env := New()
	defer env.Close()

	require.NoError(t, env.Inject("mod", map[string]lua.LGFunction{
		"f": func(L *lua.LState) int { return 0 },
	}))
	// Second injection drops the old exports entirely.
	require.NoError(t, env.Inject("mod", map[string]lua.LGFunction{
		"g": func(L *lua.LState) int { return 0 },
	}))

	require.NoError(t, env.Do("mod.g()"))
	require.Error(t, env.Do("mod.f()"), "replaced exports must be gone")
	require.Equal(t, []string{"mod"}, env.Injected())
}

func TestEnv_Reset(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	env := New()
	defer env.Close()
	require.NoError(t, env.Inject("a", nil))
	require.NoError(t, env.Inject("b", nil))

	// --- Act ---
	env.Reset()

	// --- Assert ---
	require.Empty(t, env.Injected())
	require.False(t, env.Has("a"))
	require.Error(t, env.Do("a.anything()"), "reset bindings must be nil globals")
}

func TestEnv_InjectedSorted(t *testing.T) {
	t.Parallel()

	env := New()
	defer env.Close()
	require.NoError(t, env.Inject("zeta", nil))
	require.NoError(t, env.Inject("alpha", nil))

	require.Equal(t, []string{"alpha", "zeta"}, env.Injected())
}

func TestEnv_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	env := New()
	defer env.Close()
	require.Error(t, env.Inject("", nil))
}

func TestEnv_ClosedEnvRejectsUse(t *testing.T) {
	t.Parallel()

	env := New()
	env.Close()

	require.Error(t, env.Inject("mod", nil))
	require.Error(t, env.Do("print('hi')"))
}
