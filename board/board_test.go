package board_test

import (
	"testing"

	"breadboardpnr/board"
	"breadboardpnr/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func small() *board.Breadboard {
	return board.New(board.Config{Rows: 6, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}})
}

func TestGapAndTroughColumnsHaveNoHoles(t *testing.T) {
	b := small()
	for row := 0; row < 6; row++ {
		for _, col := range []int{5, 6, -2, -1, 12, 13} {
			assert.False(t, b.IsRealHole(core.Hole{Row: row, Col: col}), "col %d should have no holes", col)
		}
	}
}

func TestStripHolesShareUFClass(t *testing.T) {
	b := small()
	strip, ok := b.StripOf(core.Hole{Row: 2, Col: 0})
	require.True(t, ok)
	require.Len(t, strip, 5)
	root := b.UF().Find(strip[0])
	for _, h := range strip {
		assert.Equal(t, root, b.UF().Find(h))
	}
}

func TestRailHolesShareUFClassAcrossSides(t *testing.T) {
	b := small()
	leftVPlus := core.Hole{Row: 0, Col: -3}
	rightVPlus := core.Hole{Row: 0, Col: 14}
	require.True(t, b.IsRealHole(leftVPlus))
	require.True(t, b.IsRealHole(rightVPlus))
	assert.True(t, b.UF().Connected(leftVPlus, rightVPlus))
}

func TestVPlusAndGNDAreDisjoint(t *testing.T) {
	b := small()
	vplus := core.Hole{Row: 0, Col: -3}
	gnd := core.Hole{Row: 0, Col: -4}
	assert.False(t, b.UF().Connected(vplus, gnd))
}

func TestClaimComponentRejectsOccupiedHole(t *testing.T) {
	b := small()
	body := []core.Hole{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	require.NoError(t, b.ClaimComponent("R1", body))

	err := b.ClaimComponent("R2", []core.Hole{{Row: 1, Col: 0}, {Row: 1, Col: 1}})
	assert.ErrorIs(t, err, board.ErrHoleOccupied)
}

func TestReleaseThenReclaimIsLegal(t *testing.T) {
	b := small()
	body := []core.Hole{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	require.NoError(t, b.ClaimComponent("R1", body))
	b.ReleaseComponent(body)
	assert.NoError(t, b.ClaimComponent("R1", body))
}

func TestClaimComponentTagsPinsAndBody(t *testing.T) {
	b := small()
	body := []core.Hole{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	require.NoError(t, b.ClaimComponent("R1", body))

	s0, _ := b.State(body[0])
	s1, _ := b.State(body[1])
	s2, _ := b.State(body[2])
	assert.Equal(t, core.CompPin, s0.Kind)
	assert.Equal(t, core.CompBody, s1.Kind)
	assert.Equal(t, core.CompPin, s2.Kind)
	assert.Equal(t, "R1", s0.OwnerID)
}

func TestFrontierOfHoleExcludesSelfAndOccupied(t *testing.T) {
	b := small()
	h := core.Hole{Row: 0, Col: 0}
	frontier := b.FrontierOfHole(h)
	assert.Len(t, frontier, 4) // strip width 5, minus self

	require.NoError(t, b.ClaimComponent("R1", []core.Hole{{Row: 0, Col: 1}, {Row: 1, Col: 1}}))
	frontier = b.FrontierOfHole(h)
	assert.Len(t, frontier, 3)
}

func TestFrontierOfAnchorReturnsAllEmptyRailHoles(t *testing.T) {
	b := small()
	frontier := b.FrontierOfAnchor(core.VPlus)
	// 6 rows, 2 columns (one on each side) carrying V+.
	assert.Len(t, frontier, 12)
}

func TestRebuildUFReflectsCommittedWiresOnly(t *testing.T) {
	b := small()
	nets := map[string]*core.Net{
		"N1": core.NewNet("N1"),
	}
	a, c := core.Hole{Row: 0, Col: 0}, core.Hole{Row: 1, Col: 0}
	require.NoError(t, b.ClaimWireSegment("w1", []core.Hole{a, c}))
	nets["N1"].AddSegPath([]core.Hole{a, c})

	b.RebuildUF(nets)
	assert.True(t, b.UF().Connected(a, c))

	b.ReleaseWireSegment([]core.Hole{a, c})
	nets["N1"].PopSegPaths(1)
	b.RebuildUF(nets)
	assert.False(t, b.UF().Connected(a, c))
}
