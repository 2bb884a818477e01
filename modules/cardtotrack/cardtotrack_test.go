package cardtotrack

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoriumgroup/thorium/internal/graph"
	"github.com/thoriumgroup/thorium/internal/host"
)

// cardAndCamera builds a card at the origin facing a camera five units up
// the z axis.
func cardAndCamera(t *testing.T) (*graph.Graph, *graph.Node, *graph.Node) {
	t.Helper()
	g := graph.New()
	card := g.Add("Card", "hero")
	cam := g.Add("Camera", "shotcam")
	cam.Knob("translate").SetVector(0, 0, 5)
	return g, card, cam
}

func TestCardToTrack_BakesFourTracks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g, card, cam := cardAndCamera(t)

	// --- Act ---
	tracker, err := CardToTrack(g, Options{
		Card: card, Camera: cam,
		Width: 1920, Height: 1080,
		First: 1, Last: 10,
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "heroTracks", tracker.Name())
	require.Equal(t, "Tracker4", tracker.Class())
	for i := 1; i <= 4; i++ {
		track := tracker.Knob(fmt.Sprintf("track%d", i))
		require.NotNil(t, track)
		require.Len(t, track.KeyFrames(), 10, "one key per frame")
	}

	// The card is centered on the camera axis, so the corners land
	// symmetrically around the frame center.
	left := tracker.Knob("track1").ValueAt(1)
	right := tracker.Knob("track2").ValueAt(1)
	require.InDelta(t, 1920, left[0]+right[0], 1e-6)
	require.InDelta(t, left[1], right[1], 1e-6, "lower corners share a scanline")

	upper := tracker.Knob("track3").ValueAt(1)
	require.Greater(t, upper[1], left[1], "upper corners project above lower ones")
}

func TestCardToTrack_PlacesTrackerBelowCard(t *testing.T) {
	t.Parallel()

	g, card, cam := cardAndCamera(t)
	card.SetXYPos(300, 100)

	tracker, err := CardToTrack(g, Options{
		Card: card, Camera: cam,
		Width: 100, Height: 100, First: 1, Last: 1,
	})

	require.NoError(t, err)
	require.Greater(t, tracker.YPos(), 100, "the tracker sits below the card")
}

func TestCardToTrack_BehindCameraFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g, card, cam := cardAndCamera(t)
	card.Knob("translate").SetVector(0, 0, 10)

	// --- Act ---
	_, err := CardToTrack(g, Options{
		Card: card, Camera: cam,
		Width: 1920, Height: 1080, First: 1, Last: 1,
	})

	// --- Assert ---
	require.ErrorContains(t, err, "behind the camera")
	require.Nil(t, g.Node("heroTracks"), "the partial tracker is removed")
}

func TestCardToTrack_ResolvesFromSelection(t *testing.T) {
	t.Parallel()

	g, card, cam := cardAndCamera(t)
	card.SetSelected(true)
	cam.SetSelected(true)

	tracker, err := CardToTrack(g, Options{
		Width: 100, Height: 100, First: 1, Last: 1,
	})

	require.NoError(t, err)
	require.Equal(t, "heroTracks", tracker.Name())
}

func TestCardToTrack_SelectionErrors(t *testing.T) {
	t.Parallel()

	g, card, cam := cardAndCamera(t)
	opts := Options{Width: 100, Height: 100, First: 1, Last: 1}

	_, err := CardToTrack(g, opts)
	require.ErrorContains(t, err, "no Card selected")

	card.SetSelected(true)
	_, err = CardToTrack(g, opts)
	require.ErrorContains(t, err, "no Camera selected")

	cam.SetSelected(true)
	_, err = CardToTrack(g, Options{Width: 0, Height: 100, First: 1, Last: 1})
	require.ErrorContains(t, err, "invalid output resolution")

	_, err = CardToTrack(g, Options{Width: 100, Height: 100, First: 5, Last: 1})
	require.ErrorContains(t, err, "invalid frame range")
}

func TestCardToTrack_AnimatedCardFollowsMotion(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g, card, cam := cardAndCamera(t)
	translate := card.Knob("translate")
	translate.SetAnimated()
	require.NoError(t, translate.SetKeyAt(1, -1, 0, 0))
	require.NoError(t, translate.SetKeyAt(2, 1, 0, 0))

	// --- Act ---
	tracker, err := CardToTrack(g, Options{
		Card: card, Camera: cam,
		Width: 1920, Height: 1080, First: 1, Last: 2,
	})

	// --- Assert ---
	require.NoError(t, err)
	track := tracker.Knob("track1")
	require.Less(t, track.ValueAt(1)[0], track.ValueAt(2)[0],
		"the track moves right with the card")
}

func TestModule_ScriptAndMenu(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	session := host.NewSession(host.Interactive)
	defer session.Close()
	card := session.Graph.Add("Card", "hero")
	cam := session.Graph.Add("Camera", "shotcam")
	cam.Knob("translate").SetVector(0, 0, 5)
	card.SetSelected(true)
	cam.SetSelected(true)

	mod := &Module{}
	require.NoError(t, mod.Register(context.Background(), session))
	require.NoError(t, mod.RegisterGUI(context.Background(), session))

	// --- Act ---
	item := session.Menus.Menu("User").FindItem("3D").Submenu().FindItem("CardToTrack")
	require.NotNil(t, item)
	require.NoError(t, item.Invoke())

	// --- Assert ---
	require.NotNil(t, session.Graph.Node("heroTracks"))
}
