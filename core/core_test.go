package core_test

import (
	"testing"

	"breadboardpnr/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoleString(t *testing.T) {
	h := core.Hole{Row: 3, Col: -4}
	assert.Equal(t, "3,-4", h.String())
}

func TestPassiveRailWeight(t *testing.T) {
	p := &core.Passive{Name: "R1", NetA: "V+", NetB: "GND"}
	assert.Equal(t, 2, p.RailWeight())

	p2 := &core.Passive{Name: "R2", NetA: "V+", NetB: "N1"}
	assert.Equal(t, 1, p2.RailWeight())

	p3 := &core.Passive{Name: "R3", NetA: "N1", NetB: "N2"}
	assert.Equal(t, 0, p3.RailWeight())
}

func TestPassiveSetAndClearPlacement(t *testing.T) {
	p := &core.Passive{Name: "R1", Length: 3}
	body := []core.Hole{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}}
	p.SetPlacement(body)
	require.True(t, p.Placed)
	assert.Equal(t, body[0], p.Anchor)
	assert.Equal(t, body[0], p.PinA)
	assert.Equal(t, body[2], p.PinB)

	p.ClearPlacement()
	assert.False(t, p.Placed)
	assert.Nil(t, p.Body)
}

func TestNewNetRailAnchors(t *testing.T) {
	vplus := core.NewNet("V+")
	assert.True(t, vplus.IsRail())
	assert.True(t, vplus.FixedAnchors[core.VPlus])

	internal := core.NewNet("N1")
	assert.False(t, internal.IsRail())
}

func TestNetTermsAndSegPaths(t *testing.T) {
	n := core.NewNet("N1")
	h1, h2 := core.Hole{Row: 0, Col: 0}, core.Hole{Row: 1, Col: 0}
	n.AddTerm(h1)
	n.AddTerm(h2)
	require.Len(t, n.Terms, 2)

	n.RemoveTerm(h1)
	assert.Equal(t, []core.Hole{h2}, n.Terms)

	path := []core.Hole{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	n.AddSegPath(path)
	require.Len(t, n.SegPaths, 1)

	popped := n.PopSegPaths(1)
	require.Len(t, popped, 1)
	assert.Empty(t, n.SegPaths)
}
