package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"breadboardpnr/board"
	"breadboardpnr/core"
	"breadboardpnr/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func small() *board.Breadboard {
	return board.New(board.Config{Rows: 6, WL: 5, WR: 5, WireLengths: []int{1, 3, 5}})
}

func TestRenderProducesDecodablePNG(t *testing.T) {
	b := small()
	res, err := render.Render(b, nil, nil, render.DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, res.PNG)
	require.NotEmpty(t, res.Base64)

	_, err = png.Decode(bytes.NewReader(res.PNG))
	assert.NoError(t, err)
}

func TestRenderIsDeterministicAcrossRuns(t *testing.T) {
	b := small()
	comp := &core.Passive{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"}
	comp.SetPlacement([]core.Hole{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}})

	nets := map[string]*core.Net{"N1": core.NewNet("N1")}
	nets["N1"].AddSegPath([]core.Hole{{Row: 0, Col: 1}, {Row: 0, Col: 2}})

	first, err := render.Render(b, []*core.Passive{comp}, nets, render.DefaultConfig())
	require.NoError(t, err)
	second, err := render.Render(b, []*core.Passive{comp}, nets, render.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Base64, second.Base64)
}

func TestRenderHandlesUnplacedComponents(t *testing.T) {
	b := small()
	comp := &core.Passive{Name: "R1", Length: 3, Orient: core.Vertical, NetA: "V+", NetB: "GND"}

	res, err := render.Render(b, []*core.Passive{comp}, nil, render.DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, res.PNG)
}
