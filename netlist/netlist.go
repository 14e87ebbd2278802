// Package netlist implements the netlist translator (NT): it parses a
// SPICE-subset netlist, identifies the supply and ground nets, compacts
// the remaining node names, and emits the components the placement
// search and router operate on.
//
// The translator is grounded on two sources: the literal SPICE grammar
// worked out against the mock netlist in the original Python source's
// NetlistAgent ("V1 N001 0 DC 5 / R1 N001 N002 330 / D1 N002 0 DLED /
// .model DLED D (...)"), and the union-of-pins-into-nets shape of
// OpenTraceJTAG's reveng.Netlist — adapted here from runtime-discovered
// pin equivalence to netlist-declared node equivalence.
package netlist

import (
	"fmt"
	"strconv"
	"strings"

	"breadboardpnr/core"
)

// Config parametrizes per-family defaults the spec leaves unfixed (see
// DESIGN.md's Open Questions): default component length and orientation.
// Keys are the SPICE ref prefix ("R", "C", "L", "D") or "LED" for
// diode instances detected as LEDs.
type Config struct {
	DefaultLength      map[string]int
	DefaultOrientation core.Orientation
}

// DefaultConfig returns length 3 for every family and vertical
// orientation, matching the spec's stated default.
func DefaultConfig() Config {
	return Config{
		DefaultLength: map[string]int{
			"R": 3, "C": 3, "L": 3, "D": 3, "LED": 3,
		},
		DefaultOrientation: core.Vertical,
	}
}

// Result is the translator's output: the compacted internal nets (rail
// nets are NOT included here — they are created lazily by the search the
// first time a component binds to them), the component list, and the
// name -> (net_a, net_b) binding table.
type Result struct {
	Nets       map[string]*core.Net
	Components []*core.Passive
	Bindings   map[string][2]string
}

type rawComponent struct {
	ref       string
	prefix    byte
	n1, n2    string
	modelName string
}

// Translate parses text (a SPICE-subset netlist, per spec.md §6) into a
// Result using cfg's per-family defaults.
func Translate(text string, cfg Config) (*Result, error) {
	lines, err := tokenizeLines(text)
	if err != nil {
		return nil, err
	}

	ledModels := make(map[string]bool)
	var rawComponents []rawComponent
	supplyFound := false
	var supplyPositiveNode string

parseLines:
	for _, ln := range lines {
		tokens := strings.Fields(ln)
		if len(tokens) == 0 {
			continue
		}
		head := tokens[0]
		switch {
		case strings.EqualFold(head, ".model"):
			if len(tokens) < 3 {
				return nil, fmt.Errorf("%w: malformed .model line %q", ErrParse, ln)
			}
			name, devType := tokens[1], tokens[2]
			if strings.EqualFold(devType, "D") && strings.Contains(strings.ToUpper(name), "LED") {
				ledModels[name] = true
			}

		case strings.EqualFold(head, ".end"):
			// Parsing stops here; anything after is ignored.
			break parseLines

		default:
			prefix := classify(head)
			switch prefix {
			case 'V':
				if len(tokens) < 3 {
					return nil, fmt.Errorf("%w: %q", ErrMalformedComponent, ln)
				}
				pos, neg := tokens[1], tokens[2]
				if !supplyFound && neg == "0" {
					supplyFound = true
					supplyPositiveNode = pos
				}
			case 'I':
				// Current sources are recognized but contribute no
				// component or net to the placement problem.
			case 'R', 'C', 'L', 'D':
				if len(tokens) < 3 {
					return nil, fmt.Errorf("%w: %q", ErrMalformedComponent, ln)
				}
				rc := rawComponent{ref: head, prefix: prefix, n1: tokens[1], n2: tokens[2]}
				if prefix == 'D' {
					rc.modelName = tokens[len(tokens)-1]
				}
				rawComponents = append(rawComponents, rc)
			default:
				return nil, fmt.Errorf("%w: unrecognized ref %q", ErrParse, head)
			}
		}
	}

	canon := newCanonicalizer(supplyFound, supplyPositiveNode)

	// First pass: canonicalize every node, populating the N1,N2,...
	// compaction table in first-seen order and detecting any reference
	// to an absent V+.
	for _, rc := range rawComponents {
		if _, err := canon.resolve(rc.n1); err != nil {
			return nil, err
		}
		if _, err := canon.resolve(rc.n2); err != nil {
			return nil, err
		}
	}

	components, bindings := buildComponents(rawComponents, ledModels, canon, cfg)

	nets := make(map[string]*core.Net)
	for _, internal := range canon.orderedInternalNames() {
		nets[internal] = core.NewNet(internal)
	}

	return &Result{Nets: nets, Components: components, Bindings: bindings}, nil
}

// classify returns the uppercased first character of a SPICE ref, or 0
// if ref is empty.
func classify(ref string) byte {
	if ref == "" {
		return 0
	}
	c := ref[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// tokenizeLines splits text into logical lines, dropping blank lines and
// '*'-prefixed comments.
func tokenizeLines(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// buildComponents assigns final, disambiguated names (LED/LED1/LED2/...)
// and constructs the Passive list plus the bindings table, in raw
// first-seen order.
func buildComponents(raws []rawComponent, ledModels map[string]bool, canon *canonicalizer, cfg Config) ([]*core.Passive, map[string][2]string) {
	baseNameOf := make([]string, len(raws))
	counts := make(map[string]int)
	for i, rc := range raws {
		base := rc.ref
		if rc.prefix == 'D' && ledModels[rc.modelName] {
			base = "LED"
		}
		baseNameOf[i] = base
		counts[base]++
	}

	seen := make(map[string]int)
	components := make([]*core.Passive, 0, len(raws))
	bindings := make(map[string][2]string, len(raws))
	for i, rc := range raws {
		base := baseNameOf[i]
		var name string
		if counts[base] == 1 {
			name = base
		} else if seen[base] == 0 {
			name = base
		} else {
			name = fmt.Sprintf("%s%d", base, seen[base])
		}
		seen[base]++

		famKey := string(rc.prefix)
		if base == "LED" {
			famKey = "LED"
		}
		length := cfg.DefaultLength[famKey]
		if length == 0 {
			length = 3
		}

		netA, _ := canon.resolve(rc.n1)
		netB, _ := canon.resolve(rc.n2)

		components = append(components, &core.Passive{
			Name:   name,
			Length: length,
			Orient: cfg.DefaultOrientation,
			NetA:   netA,
			NetB:   netB,
		})
		bindings[name] = [2]string{netA, netB}
	}
	return components, bindings
}

// canonicalizer maps raw SPICE node names to canonical net names: "GND"
// for ground, "V+" for the supply positive node (or the literal "V+"
// token when a supply was identified), and "N1", "N2", ... for
// everything else, assigned in first-seen order.
type canonicalizer struct {
	supplyFound bool
	supplyNode  string

	order    []string // internal (Nk) names in first-seen order
	assigned map[string]string
}

func newCanonicalizer(supplyFound bool, supplyNode string) *canonicalizer {
	return &canonicalizer{
		supplyFound: supplyFound,
		supplyNode:  supplyNode,
		assigned:    make(map[string]string),
	}
}

func (c *canonicalizer) resolve(node string) (string, error) {
	if node == "0" || strings.EqualFold(node, "GND") {
		return "GND", nil
	}
	if node == "V+" {
		if !c.supplyFound {
			return "", fmt.Errorf("%w: node %q references V+ with no supply present", ErrMissingSupply, node)
		}
		return "V+", nil
	}
	if c.supplyFound && node == c.supplyNode {
		return "V+", nil
	}
	if canonical, ok := c.assigned[node]; ok {
		return canonical, nil
	}
	canonical := "N" + strconv.Itoa(len(c.order)+1)
	c.assigned[node] = canonical
	c.order = append(c.order, canonical)
	return canonical, nil
}

// orderedInternalNames returns the compacted N1,N2,... names. Names are
// assigned sequentially as nodes are first seen, so c.order is already
// in N1,N2,... order.
func (c *canonicalizer) orderedInternalNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
