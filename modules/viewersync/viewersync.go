// Package viewersync links Viewer nodes so that panning one viewer's knobs
// updates the others. Each linked viewer grows a "Viewer Sync" tab of
// per-knob toggles and a knob-changed callback naming its partners; the
// callback script is also how partners are discovered again later, so no
// state lives outside the graph.
package viewersync

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thoriumgroup/thorium/internal/graph"
)

const (
	tabKnob        = "vs_options"
	callbackPrefix = "viewersync.sync_viewers({"
	callbackSuffix = "})"
)

// syncing guards against callback ping-pong: writing a synced value to a
// partner viewer fires that viewer's own callback.
var syncing bool

// callbackScript renders the knob-changed callback for a viewer linked to
// targets. The viewer itself is never in its own target list.
func callbackScript(targets []string) string {
	quoted := make([]string, len(targets))
	for i, t := range targets {
		quoted[i] = strconv.Quote(t)
	}
	return callbackPrefix + strings.Join(quoted, ", ") + callbackSuffix
}

// linkedViewers parses the partner names out of a callback script. The
// second result is false when the script belongs to something else, in which
// case the viewer must be left alone.
func linkedViewers(script string) ([]string, bool) {
	if script == "" {
		return nil, true
	}
	if !strings.HasPrefix(script, callbackPrefix) || !strings.HasSuffix(script, callbackSuffix) {
		return nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(script, callbackPrefix), callbackSuffix)
	if inner == "" {
		return nil, true
	}
	var names []string
	for _, part := range strings.Split(inner, ", ") {
		name, err := strconv.Unquote(part)
		if err != nil {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

// addSyncKnobs builds the Viewer Sync tab on v. Calling it on a viewer that
// already has the tab resets every toggle to its default.
func addSyncKnobs(v *graph.Node) {
	v.AddKnob(graph.NewTabKnob(tabKnob, "Viewer Sync"))
	sections := []struct {
		name  string
		title string
		knobs []string
	}{
		{"vs_input_options", "Input Options", inputOptions},
		{"vs_display_options", "Display Options", displayOptions},
		{"vs_overlay_options", "Overlay Options", overlayOptions},
		{"vs_process_options", "Processing Options", processOptions},
	}
	for _, sec := range sections {
		v.AddKnob(graph.NewTextKnob(sec.name, "", sec.title))
		for _, name := range sec.knobs {
			k := graph.NewBoolKnob("vs_"+name, knobTitles[name])
			k.SetTooltip(knobTooltips[name])
			k.SetBool(syncDefaults[name])
			v.AddKnob(k)
		}
	}
}

// removeSyncKnobs strips the Viewer Sync tab and toggles from v.
func removeSyncKnobs(v *graph.Node) {
	for _, k := range v.Knobs() {
		if strings.HasPrefix(k.Name(), "vs_") {
			v.RemoveKnob(k.Name())
		}
	}
}

// clearSync detaches v from its sync group. Foreign callbacks are preserved.
func clearSync(v *graph.Node) {
	cb := v.Knob("knobChanged")
	if cb == nil {
		return
	}
	if _, ours := linkedViewers(cb.String()); !ours {
		return
	}
	cb.SetString("")
	v.OnKnobChanged(nil)
	removeSyncKnobs(v)
}

// sessionViewers returns the selected viewers, or every viewer in the graph
// when none are selected.
func sessionViewers(g *graph.Graph) []*graph.Node {
	var selected []*graph.Node
	for _, n := range g.SelectedNodes() {
		if n.Class() == "Viewer" {
			selected = append(selected, n)
		}
	}
	if len(selected) > 0 {
		return selected
	}
	return g.AllNodes("Viewer", false)
}

// SetupSync links the selected viewers (or all viewers when nothing is
// selected) into one sync group. Viewers carrying an unrelated knob-changed
// callback are skipped rather than overwritten. Stale partners from a
// previous group that did not make it into the new one are unlinked.
func SetupSync(g *graph.Graph) ([]*graph.Node, error) {
	var group []*graph.Node
	var stale []string
	for _, v := range sessionViewers(g) {
		cb := v.Knob("knobChanged")
		if cb == nil {
			continue
		}
		if old, ours := linkedViewers(cb.String()); ours {
			stale = append(stale, old...)
			group = append(group, v)
		}
	}
	if len(group) < 2 {
		return nil, fmt.Errorf("viewersync: need at least two viewers to link, have %d", len(group))
	}

	inGroup := make(map[string]bool, len(group))
	names := make([]string, len(group))
	for i, v := range group {
		inGroup[v.Name()] = true
		names[i] = v.Name()
	}
	for _, name := range stale {
		if inGroup[name] {
			continue
		}
		if v := g.Node(name); v != nil && v.Class() == "Viewer" {
			clearSync(v)
		}
	}

	for _, v := range group {
		addSyncKnobs(v)
		targets := make([]string, 0, len(names)-1)
		for _, name := range names {
			if name != v.Name() {
				targets = append(targets, name)
			}
		}
		v.Knob("knobChanged").SetString(callbackScript(targets))
		v.OnKnobChanged(func(n *graph.Node, k *graph.Knob) {
			syncFrom(g, n, k)
		})
	}
	return group, nil
}

// RemoveCallbacks unlinks the selected viewers (or all viewers) and every
// partner they name.
func RemoveCallbacks(g *graph.Graph) {
	viewers := sessionViewers(g)
	seen := make(map[string]bool, len(viewers))
	for _, v := range viewers {
		seen[v.Name()] = true
	}
	for _, v := range viewers {
		if cb := v.Knob("knobChanged"); cb != nil {
			if partners, ours := linkedViewers(cb.String()); ours {
				for _, name := range partners {
					if seen[name] {
						continue
					}
					seen[name] = true
					if p := g.Node(name); p != nil && p.Class() == "Viewer" {
						viewers = append(viewers, p)
					}
				}
			}
		}
	}
	for _, v := range viewers {
		clearSync(v)
	}
}

// syncFrom is the knob-changed callback body: it pushes the changed value of
// caller out to the viewers named in its callback script.
func syncFrom(g *graph.Graph, caller *graph.Node, k *graph.Knob) {
	if syncing {
		return
	}
	name := k.Name()
	if name == "knobChanged" {
		return
	}
	cb := caller.Knob("knobChanged")
	if cb == nil {
		return
	}
	partners, ours := linkedViewers(cb.String())
	if !ours || len(partners) == 0 {
		return
	}

	syncing = true
	defer func() { syncing = false }()

	targets := make([]*graph.Node, 0, len(partners))
	for _, pname := range partners {
		if p := g.Node(pname); p != nil && p.Class() == "Viewer" {
			targets = append(targets, p)
		}
	}

	if base, isToggle := strings.CutPrefix(name, "vs_"); isToggle {
		if _, known := syncDefaults[base]; !known {
			return
		}
		// Toggling a sync option propagates the toggle itself.
		for _, t := range targets {
			if t.HasKnob(name) {
				t.SetBool(name, k.Bool())
			}
		}
		return
	}

	if _, known := syncDefaults[name]; !known {
		return
	}
	if toggle := caller.Knob("vs_" + name); toggle == nil || !toggle.Bool() {
		return
	}
	if name == "inputs" {
		for _, t := range targets {
			syncInputs(caller, t)
		}
		return
	}
	for _, t := range targets {
		applyValue(t, k)
	}
}

// SyncAll pushes every sync-enabled knob of source to its linked viewers.
func SyncAll(g *graph.Graph, source *graph.Node) {
	for name := range syncDefaults {
		toggle := source.Knob("vs_" + name)
		if toggle == nil || !toggle.Bool() {
			continue
		}
		if k := source.Knob(name); k != nil {
			syncFrom(g, source, k)
		}
	}
}

func syncInputs(from, to *graph.Node) {
	max := to.MaxInputs()
	for i := 0; i < from.Inputs() && i < max; i++ {
		// Errors only occur past MaxInputs, which the loop bound excludes.
		_ = to.SetInput(i, from.Input(i))
	}
}

func applyValue(target *graph.Node, k *graph.Knob) {
	if !target.HasKnob(k.Name()) {
		return
	}
	switch k.Kind() {
	case graph.KindBool:
		_ = target.SetBool(k.Name(), k.Bool())
	case graph.KindString, graph.KindText:
		_ = target.SetString(k.Name(), k.String())
	default:
		_ = target.Set(k.Name(), k.Vector()...)
	}
}
