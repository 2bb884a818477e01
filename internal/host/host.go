// Package host models one session of the host application from a plugin's
// point of view. Everything a module may touch (the node graph, the shared
// scripting namespace, the menu bar) hangs off an explicit Session that is
// handed to modules at activation. No process-global state is involved.
package host

import (
	"github.com/thoriumgroup/thorium/internal/graph"
	"github.com/thoriumgroup/thorium/internal/menu"
	"github.com/thoriumgroup/thorium/internal/scripting"
)

// Mode distinguishes batch rendering from an interactive GUI session.
type Mode int

const (
	// Headless is a batch session: no menu bar, no panels.
	Headless Mode = iota
	// Interactive is a GUI session with a menu bar.
	Interactive
)

// String returns the mode's display name.
func (m Mode) String() string {
	if m == Interactive {
		return "interactive"
	}
	return "headless"
}

// Session is the service surface one host invocation exposes to modules.
type Session struct {
	mode Mode

	// Graph is the session's root node graph.
	Graph *graph.Graph

	// Scripts is the shared scripting namespace modules export commands to.
	Scripts *scripting.Env

	// Menus is the menu bar; nil in headless sessions.
	Menus *menu.Root

	root *graph.Node
}

// NewSession builds a session for the given mode. Menu commands dispatch
// through the session's scripting environment.
func NewSession(mode Mode) *Session {
	s := &Session{
		mode:    mode,
		Graph:   graph.New(),
		Scripts: scripting.New(),
	}
	s.root = s.Graph.Add("Root", "root")
	if mode == Interactive {
		s.Menus = menu.NewRoot(s.Scripts.Do)
	}
	return s
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Interactive reports whether the session has a GUI.
func (s *Session) Interactive() bool { return s.mode == Interactive }

// Root returns the session's root settings node (frame range, format).
func (s *Session) Root() *graph.Node { return s.root }

// Close releases session resources.
func (s *Session) Close() {
	s.Scripts.Close()
}
