package animatedsnap

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/thoriumgroup/thorium/internal/graph"
	"github.com/thoriumgroup/thorium/internal/host"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Info describes the module to the activator.
func (m *Module) Info() registry.Info {
	return registry.Info{
		Name:        "animatedsnap",
		Version:     "1.2",
		Description: "Snap 3D nodes to animated geometry over a frame range",
	}
}

// Register exports animated_snap into the scripting namespace.
//
// Call shape: animated_snap(transforms, vertices [, first, last]) where
// transforms is a list of knob names and vertices a list of {x, y, z}
// triples. The frame range defaults to the project range.
func (m *Module) Register(ctx context.Context, session *host.Session) error {
	return session.Scripts.Inject("animatedsnap", map[string]lua.LGFunction{
		"animated_snap": func(L *lua.LState) int {
			opts := Options{
				Transforms: luaStrings(L.OptTable(1, L.NewTable())),
				First:      int(session.Root().Knob("first_frame").Float()),
				Last:       int(session.Root().Knob("last_frame").Float()),
			}
			verts := luaVertices(L.OptTable(2, L.NewTable()))
			opts.Vertices = func(int) []graph.Vec3 { return verts }
			if L.GetTop() >= 4 {
				opts.First = L.CheckInt(3)
				opts.Last = L.CheckInt(4)
			}
			if err := Snap(session.Graph, opts); err != nil {
				L.RaiseError("animated_snap: %s", err)
			}
			return 0
		},
	})
}

// RegisterGUI appends the animated variants to the Axis snap menu.
func (m *Module) RegisterGUI(ctx context.Context, session *host.Session) error {
	snap := session.Menus.Menu("Axis").AddMenu("Snap", -1)
	snap.AddSeparator()
	commands := []struct{ name, script string }{
		{
			"Match position - Animated",
			`animatedsnap.animated_snap({"translate"})`,
		},
		{
			"Match position, orientation - Animated",
			`animatedsnap.animated_snap({"translate", "rotate"})`,
		},
		{
			"Match position, orientation, scale - Animated",
			`animatedsnap.animated_snap({"translate", "rotate", "scaling"})`,
		},
	}
	for _, c := range commands {
		if _, err := snap.AddCommand(c.name, c.script, "", -1); err != nil {
			return err
		}
	}
	return nil
}

func luaStrings(tbl *lua.LTable) []string {
	out := make([]string, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		out = append(out, lua.LVAsString(v))
	})
	return out
}

func luaVertices(tbl *lua.LTable) []graph.Vec3 {
	out := make([]graph.Vec3, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		t, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		out = append(out, graph.Vec3{
			X: float64(lua.LVAsNumber(t.RawGetInt(1))),
			Y: float64(lua.LVAsNumber(t.RawGetInt(2))),
			Z: float64(lua.LVAsNumber(t.RawGetInt(3))),
		})
	})
	return out
}
