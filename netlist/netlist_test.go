package netlist_test

import (
	"testing"

	"breadboardpnr/core"
	"breadboardpnr/netlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleResistorAcrossRails(t *testing.T) {
	text := `
* one resistor
V1 VIN 0 DC 5
R1 VIN 0 1k
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Components, 1)

	r1 := res.Components[0]
	assert.Equal(t, "R1", r1.Name)
	assert.Equal(t, "V+", r1.NetA)
	assert.Equal(t, "GND", r1.NetB)
	assert.Empty(t, res.Nets) // no internal nets: both ends are rails
}

func TestLEDWithCurrentLimitingResistor(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC N1 330
D1 N1 0 DLED
.model DLED D ( IS=1e-14 )
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Components, 2)

	byName := make(map[string]*core.Passive, 2)
	for _, c := range res.Components {
		byName[c.Name] = c
	}
	r1, ok := byName["R1"]
	require.True(t, ok)
	led, ok := byName["LED"]
	require.True(t, ok, "diode instance referencing an LED model should be relabeled LED")

	assert.Equal(t, "V+", r1.NetA)
	assert.Equal(t, r1.NetB, led.NetA, "R1's second pin and D1's first pin share the compacted node")
	assert.Equal(t, "GND", led.NetB)

	require.Len(t, res.Nets, 1)
	_, ok = res.Nets[r1.NetB]
	assert.True(t, ok)
}

func TestTwoLEDsDisambiguate(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC N1 330
D1 N1 0 DLED
R2 VCC N2 330
D2 N2 0 DLED
.model DLED D ( IS=1e-14 )
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)

	var names []string
	for _, c := range res.Components {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "LED")
	assert.Contains(t, names, "LED1")
}

func TestChainWithIntermediateNode(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC N1 330
R2 N1 0 330
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Components, 2)
	require.Len(t, res.Nets, 1)

	r1, r2 := res.Components[0], res.Components[1]
	assert.Equal(t, "V+", r1.NetA)
	assert.Equal(t, "N1", r1.NetB)
	assert.Equal(t, "N1", r2.NetA)
	assert.Equal(t, "GND", r2.NetB)
}

func TestMissingSupplyOnLiteralVPlusReference(t *testing.T) {
	text := `
R1 V+ N1 330
.end
`
	_, err := netlist.Translate(text, netlist.DefaultConfig())
	assert.ErrorIs(t, err, netlist.ErrMissingSupply)
}

func TestMalformedComponentLine(t *testing.T) {
	text := `
R1 VCC
.end
`
	_, err := netlist.Translate(text, netlist.DefaultConfig())
	assert.ErrorIs(t, err, netlist.ErrMalformedComponent)
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	text := `
* this is a comment

V1 VCC 0 DC 5
* another comment
R1 VCC 0 1k
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
}

func TestLinesAfterEndAreIgnored(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC 0 1k
.end
R2 VCC 0 1k
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
}

func TestBindingsMatchComponents(t *testing.T) {
	text := `
V1 VCC 0 DC 5
R1 VCC 0 1k
.end
`
	res, err := netlist.Translate(text, netlist.DefaultConfig())
	require.NoError(t, err)
	binding, ok := res.Bindings["R1"]
	require.True(t, ok)
	assert.Equal(t, [2]string{"V+", "GND"}, binding)
}
