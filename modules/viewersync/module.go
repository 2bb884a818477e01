package viewersync

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
		Name:        "viewersync",
		Version:     "1.1",
		Description: "Link Viewer nodes so their settings stay in step",
	}
}

// Register exports the sync commands into the scripting namespace.
func (m *Module) Register(ctx context.Context, session *host.Session) error {
	return session.Scripts.Inject("viewersync", map[string]lua.LGFunction{
		"setup_sync": func(L *lua.LState) int {
			group, err := SetupSync(session.Graph)
			if err != nil {
				L.RaiseError("setup_sync: %s", err)
				return 0
			}
			names := L.NewTable()
			for _, v := range group {
				names.Append(lua.LString(v.Name()))
			}
			L.Push(names)
			return 1
		},
		"remove_callbacks": func(L *lua.LState) int {
			RemoveCallbacks(session.Graph)
			return 0
		},
		// sync_viewers is the form the knob-changed callback scripts call:
		// the first named viewer is the source, the rest receive its values.
		"sync_viewers": func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			if tbl.Len() == 0 {
				return 0
			}
			source := session.Graph.Node(lua.LVAsString(tbl.RawGetInt(1)))
			if source == nil {
				L.RaiseError("sync_viewers: unknown viewer %q", lua.LVAsString(tbl.RawGetInt(1)))
				return 0
			}
			SyncAll(session.Graph, source)
			return 0
		},
	})
}

// RegisterGUI puts the link commands on the Viewer menu.
func (m *Module) RegisterGUI(ctx context.Context, session *host.Session) error {
	viewer := session.Menus.Menu("Viewer")
	if _, err := viewer.AddCommand(
		"Create Viewer Sync", "viewersync.setup_sync()", "Shift+j",
		viewer.SortedIndex("Create Viewer Sync"),
	); err != nil {
		return err
	}
	_, err := viewer.AddCommand(
		"Remove Viewer Sync", "viewersync.remove_callbacks()", "",
		viewer.SortedIndex("Remove Viewer Sync"),
	)
	return err
}
