package keying

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/thoriumgroup/thorium/internal/host"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Info describes the module to the activator.
func (m *Module) Info() registry.Info {
	return registry.Info{
		Name:        "keying",
		Version:     "1.0",
		Description: "Keying tools: SpillSuppress despill group",
	}
}

// Register exports the keying commands into the scripting namespace.
func (m *Module) Register(ctx context.Context, session *host.Session) error {
	return session.Scripts.Inject("keying", map[string]lua.LGFunction{
		"spillsuppress": func(L *lua.LState) int {
			node, err := SpillSuppress(session.Graph)
			if err != nil {
				L.RaiseError("spillsuppress: %s", err)
				return 0
			}
			L.Push(lua.LString(node.Name()))
			return 1
		},
	})
}

// RegisterGUI adds the keying tools to the node creation menu.
func (m *Module) RegisterGUI(ctx context.Context, session *host.Session) error {
	keyer := session.Menus.Menu("Nodes").AddMenu("Keyer", -1)
	_, err := keyer.AddCommand("SpillSuppress", "keying.spillsuppress()", "", -1)
	return err
}
