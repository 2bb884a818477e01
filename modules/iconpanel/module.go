package iconpanel

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/thoriumgroup/thorium/internal/host"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// Module implements the registry.Module interface for this package. The
// panel is a GUI affordance only, so headless registration is a no-op.
type Module struct {
	// IconDirs are the external icon folders to scan.
	IconDirs []string
}

// Info describes the module to the activator.
func (m *Module) Info() registry.Info {
	return registry.Info{
		Name:        "iconpanel",
		Version:     "1.0",
		Description: "Reference panel listing every available icon",
	}
}

// Register is a no-op: the icon panel has no headless surface.
func (m *Module) Register(ctx context.Context, session *host.Session) error {
	return nil
}

// RegisterGUI exports the panel builder and puts it on the Pane menu.
func (m *Module) RegisterGUI(ctx context.Context, session *host.Session) error {
	err := session.Scripts.Inject("iconpanel", map[string]lua.LGFunction{
		"show": func(L *lua.LState) int {
			L.Push(lua.LNumber(New(m.IconDirs...).IconCount()))
			return 1
		},
	})
	if err != nil {
		return err
	}
	pane := session.Menus.Menu("Pane")
	_, err = pane.AddCommand(
		PanelTitle, "iconpanel.show()", "",
		pane.SortedIndex(PanelTitle),
	)
	return err
}
