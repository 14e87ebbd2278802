package solve_test

import (
	"testing"

	"breadboardpnr/board"
	"breadboardpnr/solve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() solve.Config {
	cfg := solve.DefaultConfig()
	cfg.Board = board.Config{Rows: 8, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}}
	return cfg
}

func TestSolveSingleResistorAcrossRails(t *testing.T) {
	text := `
V1 VIN 0 DC 5
R1 VIN 0 1k
.end
`
	res, err := solve.Solve(text, smallConfig())
	require.NoError(t, err)
	require.True(t, res.OK, "%v", res.Err)

	r1, ok := res.Components["R1"]
	require.True(t, ok)
	assert.Equal(t, [2]string{"V+", "GND"}, r1.Nets)
	assert.Len(t, r1.Body, 3)

	require.NotNil(t, res.Gcode)
	assert.Empty(t, res.Gcode.SkippedParts)
	assert.Contains(t, res.Gcode.Program, "VACUUM_ON")

	require.NotNil(t, res.Render)
	assert.NotEmpty(t, res.Render.PNG)
}

func TestSolveLEDWithResistor(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC N1 330
D1 N1 0 DLED
.model DLED D ( IS=1e-14 )
.end
`
	res, err := solve.Solve(text, smallConfig())
	require.NoError(t, err)
	require.True(t, res.OK, "%v", res.Err)

	_, ok := res.Components["R1"]
	require.True(t, ok)
	_, ok = res.Components["LED"]
	require.True(t, ok)
}

func TestSolveReturnsMissingSupplyResult(t *testing.T) {
	text := `
R1 VIN 0 1k
.end
`
	res, err := solve.Solve(text, smallConfig())
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, solve.ErrMissingSupply)
}

func TestSolveReturnsPlacementExhaustedOnTinyBoard(t *testing.T) {
	text := `
V1 VIN 0 DC 5
R1 VIN 0 1k
.end
`
	cfg := smallConfig()
	cfg.Board = board.Config{Rows: 1, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}}

	res, err := solve.Solve(text, cfg)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, solve.ErrPlacementExhausted)
}

func TestSolveIsDeterministicAcrossRuns(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC N1 330
R2 N1 0 220
.end
`
	cfg := smallConfig()
	first, err := solve.Solve(text, cfg)
	require.NoError(t, err)
	require.True(t, first.OK)

	second, err := solve.Solve(text, cfg)
	require.NoError(t, err)
	require.True(t, second.OK)

	assert.Equal(t, first.Gcode.Program, second.Gcode.Program)
	assert.Equal(t, first.Render.Base64, second.Render.Base64)
}
