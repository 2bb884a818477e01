// Package cardtotrack converts a 3D card's corners into 2D tracking points.
// The card corners are pushed through the camera's projection for every frame
// of the range and baked into a Tracker node with four animated tracks.
package cardtotrack

import (
	"fmt"
	"math"

	"github.com/thoriumgroup/thorium/internal/graph"
)

// Options configures one conversion run.
type Options struct {
	// Card and Camera are the nodes to read. When nil they are resolved
	// from the graph selection, which must then hold exactly one of each.
	Card   *graph.Node
	Camera *graph.Node

	// Width and Height are the output resolution the tracks are expressed
	// in, usually the background plate format.
	Width, Height int

	// First and Last bound the frame range, inclusive.
	First, Last int
}

// CardToTrack bakes the card's corner positions, as seen through the camera,
// into a new Tracker node with four animated track knobs.
func CardToTrack(g *graph.Graph, opts Options) (*graph.Node, error) {
	card, cam, err := resolveNodes(g, opts)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("cardtotrack: invalid output resolution %dx%d", opts.Width, opts.Height)
	}
	if opts.Last < opts.First {
		return nil, fmt.Errorf("cardtotrack: invalid frame range %d-%d", opts.First, opts.Last)
	}

	tracker := g.Add("Tracker4", "")
	tracker.SetName(card.Name() + "Tracks")
	for i := 1; i <= 4; i++ {
		k := graph.NewDoubleKnob(fmt.Sprintf("track%d", i), fmt.Sprintf("track %d", i), 2)
		k.SetAnimated()
		tracker.AddKnob(k)
	}
	graph.CenterBelow(tracker, card, graph.DefaultPadding)

	for frame := opts.First; frame <= opts.Last; frame++ {
		corners := cardCorners(card, frame)
		for i, corner := range corners {
			x, y, ok := project(cam, corner, frame, opts.Width, opts.Height)
			if !ok {
				g.Delete(tracker)
				return nil, fmt.Errorf(
					"cardtotrack: corner %d is behind the camera at frame %d", i+1, frame)
			}
			knob := tracker.Knob(fmt.Sprintf("track%d", i+1))
			if err := knob.SetKeyAt(frame, x, y); err != nil {
				g.Delete(tracker)
				return nil, err
			}
		}
	}
	return tracker, nil
}

func resolveNodes(g *graph.Graph, opts Options) (card, cam *graph.Node, err error) {
	card, cam = opts.Card, opts.Camera
	if card != nil && cam != nil {
		return card, cam, nil
	}
	for _, n := range g.SelectedNodes() {
		switch n.Class() {
		case "Card":
			if card == nil {
				card = n
			}
		case "Camera":
			if cam == nil {
				cam = n
			}
		}
	}
	if card == nil {
		return nil, nil, fmt.Errorf("cardtotrack: no Card selected")
	}
	if cam == nil {
		return nil, nil, fmt.Errorf("cardtotrack: no Camera selected")
	}
	return card, cam, nil
}

// cardCorners returns the card's four corners in world space at the given
// frame, in lower-left, lower-right, upper-left, upper-right order.
func cardCorners(card *graph.Node, frame int) [4]graph.Vec3 {
	scale := knobVec(card, "scaling", frame, graph.Vec3{X: 1, Y: 1, Z: 1})
	uniform := knobFloat(card, "uniform_scale", frame, 1)
	rot := knobVec(card, "rotate", frame, graph.Vec3{})
	pos := knobVec(card, "translate", frame, graph.Vec3{})
	order := rotOrder(card)

	// A card is a unit square centered on its local origin.
	local := [4]graph.Vec3{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5},
		{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5},
	}
	var out [4]graph.Vec3
	for i, p := range local {
		p = graph.Vec3{
			X: p.X * scale.X * uniform,
			Y: p.Y * scale.Y * uniform,
			Z: p.Z * scale.Z * uniform,
		}
		out[i] = rotate(p, rot, order).Add(pos)
	}
	return out
}

// project maps a world-space point through the camera's pinhole model into
// pixel coordinates. The third result is false when the point sits on or
// behind the camera plane.
func project(cam *graph.Node, p graph.Vec3, frame, width, height int) (x, y float64, ok bool) {
	pos := knobVec(cam, "translate", frame, graph.Vec3{})
	rot := knobVec(cam, "rotate", frame, graph.Vec3{})
	focal := knobFloat(cam, "focal", frame, 50)
	hap := knobFloat(cam, "haperture", frame, 24.576)
	vap := knobFloat(cam, "vaperture", frame, 18.672)

	// Into camera space: undo the camera transform. The camera looks down
	// its local -z axis.
	local := rotateInverse(p.Sub(pos), rot, rotOrder(cam))
	if local.Z >= 0 {
		return 0, 0, false
	}
	u := focal / hap * (local.X / -local.Z)
	v := focal / vap * (local.Y / -local.Z)
	return (u + 0.5) * float64(width), (v + 0.5) * float64(height), true
}

func rotOrder(n *graph.Node) string {
	if k := n.Knob("rot_order"); k != nil && k.String() != "" {
		return k.String()
	}
	return "ZXY"
}

// rotate applies the Euler rotation in degrees using the node's rotation
// order, rightmost axis first.
func rotate(v graph.Vec3, rot graph.Vec3, order string) graph.Vec3 {
	for i := len(order) - 1; i >= 0; i-- {
		v = rotateAxis(v, order[i], angleFor(rot, order[i]))
	}
	return v
}

func rotateInverse(v graph.Vec3, rot graph.Vec3, order string) graph.Vec3 {
	for i := 0; i < len(order); i++ {
		v = rotateAxis(v, order[i], -angleFor(rot, order[i]))
	}
	return v
}

func angleFor(rot graph.Vec3, axis byte) float64 {
	switch axis {
	case 'X':
		return rot.X
	case 'Y':
		return rot.Y
	default:
		return rot.Z
	}
}

func rotateAxis(v graph.Vec3, axis byte, deg float64) graph.Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	switch axis {
	case 'X':
		return graph.Vec3{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
	case 'Y':
		return graph.Vec3{X: c*v.X + s*v.Z, Y: v.Y, Z: -s*v.X + c*v.Z}
	default:
		return graph.Vec3{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
	}
}

// knobVec reads a three-component knob at a frame, honoring animation.
func knobVec(n *graph.Node, name string, frame int, fallback graph.Vec3) graph.Vec3 {
	k := n.Knob(name)
	if k == nil {
		return fallback
	}
	vals := k.Vector()
	if k.IsAnimated() {
		vals = k.ValueAt(frame)
	}
	if len(vals) < 3 {
		return fallback
	}
	return graph.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
}

func knobFloat(n *graph.Node, name string, frame int, fallback float64) float64 {
	k := n.Knob(name)
	if k == nil {
		return fallback
	}
	if k.IsAnimated() {
		if vals := k.ValueAt(frame); len(vals) > 0 {
			return vals[0]
		}
	}
	return k.Float()
}
