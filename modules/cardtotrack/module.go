package cardtotrack

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/thoriumgroup/thorium/internal/host"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Menu is the top-level menu the command registers under. Empty
	// means "User".
	Menu string
}

// Info describes the module to the activator.
func (m *Module) Info() registry.Info {
	return registry.Info{
		Name:        "cardtotrack",
		Version:     "6.0",
		Description: "Convert a 3D card's corners to 2D tracking points",
	}
}

// Register exports card_to_track into the scripting namespace. Card and
// camera come from the selection; resolution and frame range default to the
// project settings.
func (m *Module) Register(ctx context.Context, session *host.Session) error {
	return session.Scripts.Inject("cardtotrack", map[string]lua.LGFunction{
		"card_to_track": func(L *lua.LState) int {
			root := session.Root()
			opts := Options{
				Width:  int(root.Knob("format_width").Float()),
				Height: int(root.Knob("format_height").Float()),
				First:  int(root.Knob("first_frame").Float()),
				Last:   int(root.Knob("last_frame").Float()),
			}
			if L.GetTop() >= 2 {
				opts.First = L.CheckInt(1)
				opts.Last = L.CheckInt(2)
			}
			tracker, err := CardToTrack(session.Graph, opts)
			if err != nil {
				L.RaiseError("card_to_track: %s", err)
				return 0
			}
			L.Push(lua.LString(tracker.Name()))
			return 1
		},
	})
}

// RegisterGUI adds the CardToTrack command under <menu> > 3D, keeping both
// the submenu and the command alphabetically placed.
func (m *Module) RegisterGUI(ctx context.Context, session *host.Session) error {
	name := m.Menu
	if name == "" {
		name = "User"
	}
	top := session.Menus.Menu(name)
	sub := top.AddMenu("3D", top.SortedIndex("3D"))
	_, err := sub.AddCommand(
		"CardToTrack", "cardtotrack.card_to_track()", "",
		sub.SortedIndex("CardToTrack"),
	)
	return err
}
