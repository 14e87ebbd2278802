package placement_test

import (
	"testing"

	"breadboardpnr/board"
	"breadboardpnr/core"
	"breadboardpnr/placement"
	"breadboardpnr/router"
	"breadboardpnr/shorts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func small() *board.Breadboard {
	return board.New(board.Config{Rows: 8, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}})
}

func validator(b *board.Breadboard, nets map[string]*core.Net) placement.Validator {
	return func() error {
		if err := router.RouteAll(b, nets); err != nil {
			return err
		}
		return shorts.Check(b, nets)
	}
}

func TestSearchSingleResistorAcrossRails(t *testing.T) {
	b := small()
	nets := map[string]*core.Net{}
	r1 := &core.Passive{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"}

	err := placement.Search(b, nets, []*core.Passive{r1}, placement.DefaultConfig(), validator(b, nets))
	require.NoError(t, err)

	assert.True(t, r1.Placed)
	require.NoError(t, shorts.Check(b, nets))

	vplusRep, _ := b.RailRepresentative(core.VPlus)
	gndRep, _ := b.RailRepresentative(core.GND)
	assert.True(t, b.UF().Connected(r1.PinA, vplusRep))
	assert.True(t, b.UF().Connected(r1.PinB, gndRep))
}

func TestSearchTwoParallelResistorsShareRails(t *testing.T) {
	b := small()
	nets := map[string]*core.Net{}
	r1 := &core.Passive{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"}
	r2 := &core.Passive{Name: "R2", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"}

	err := placement.Search(b, nets, []*core.Passive{r1, r2}, placement.DefaultConfig(), validator(b, nets))
	require.NoError(t, err)

	assert.True(t, r1.Placed)
	assert.True(t, r2.Placed)
	require.NoError(t, shorts.Check(b, nets))
}

func TestSearchChainWithIntermediateNode(t *testing.T) {
	b := small()
	nets := map[string]*core.Net{"N1": core.NewNet("N1")}
	r1 := &core.Passive{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "N1"}
	r2 := &core.Passive{Name: "R2", Length: 3, Orient: core.Vertical, NetA: "N1", NetB: "GND"}

	err := placement.Search(b, nets, []*core.Passive{r1, r2}, placement.DefaultConfig(), validator(b, nets))
	require.NoError(t, err)
	assert.True(t, b.UF().Connected(r1.PinB, r2.PinA))
}

func TestSearchReturnsExhaustedWhenBoardTooSmall(t *testing.T) {
	b := board.New(board.Config{Rows: 1, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}})
	nets := map[string]*core.Net{}
	// Three rail-bound resistors cannot all fit and route on a one-row board.
	comps := []*core.Passive{
		{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"},
		{Name: "R2", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"},
		{Name: "R3", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"},
	}

	err := placement.Search(b, nets, comps, placement.DefaultConfig(), validator(b, nets))
	assert.ErrorIs(t, err, placement.ErrPlacementExhausted)
	for _, c := range comps {
		assert.False(t, c.Placed)
	}
}
