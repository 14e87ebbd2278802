// Package board implements the breadboard model (BM): the fixed hole
// geometry, its derived strip/rail connectivity, and the mutable
// per-hole occupancy that the placement search and router claim and
// release during a solve.
//
// The constructor shape — compute a fixed geometry once, cache derived
// per-hole lookups, then layer mutable state on top — follows
// lvlath/gridgraph.GridGraph, whose CellValues/Conn/LandThreshold are
// immutable once built while neighborOffsets is a precomputed cache.
// Here the geometry (hole sets, strip/rail maps) plays that immutable
// role and the per-hole HoleState map plays the mutable-state role.
package board

import (
	"fmt"
	"sort"

	"breadboardpnr/core"
	"breadboardpnr/unionfind"
)

// Breadboard is the board model for a single solve: fixed geometry plus
// mutable occupancy and electrical connectivity (via an embedded
// union-find over holes).
type Breadboard struct {
	geom geometry

	holes   map[core.Hole]*core.HoleState
	stripOf map[core.Hole][]core.Hole
	railOf  map[core.Hole]core.Polarity

	uf *unionfind.UF[core.Hole]
}

// New constructs a Breadboard from cfg: computes the hole sets, seeds
// every real hole as Empty, and unions each strip's holes and each
// rail's holes into their baseline electrical classes.
func New(cfg Config) *Breadboard {
	b := &Breadboard{
		geom:    newGeometry(cfg),
		holes:   make(map[core.Hole]*core.HoleState),
		stripOf: make(map[core.Hole][]core.Hole),
		railOf:  make(map[core.Hole]core.Polarity),
		uf:      unionfind.New[core.Hole](),
	}
	b.buildHoles()
	b.resetBaseline()
	return b
}

// Config returns the geometry configuration the board was built from.
func (b *Breadboard) Config() Config { return b.geom.cfg }

// WireLengths returns the configured permitted jumper lengths.
func (b *Breadboard) WireLengths() []int { return b.geom.cfg.WireLengths }

// TroughCols returns the [lo, hi] column bounds of the central trough.
func (b *Breadboard) TroughCols() (lo, hi int) { return b.geom.troughLo, b.geom.troughHi }

// buildHoles populates holes, stripOf, and railOf from the geometry.
// Gap and trough columns never get holes, per the invariant that gap
// columns are never referenced by any wire or component.
func (b *Breadboard) buildHoles() {
	rows := b.geom.cfg.Rows

	boardColRanges := [][2]int{
		{b.geom.leftHaloLo, b.geom.leftHaloHi},
		{b.geom.rightHaloLo, b.geom.rightHaloHi},
	}
	for r := 0; r < rows; r++ {
		for _, rng := range boardColRanges {
			lo, hi := rng[0], rng[1]
			strip := make([]core.Hole, 0, hi-lo+1)
			for c := lo; c <= hi; c++ {
				strip = append(strip, core.Hole{Row: r, Col: c})
			}
			for _, h := range strip {
				b.holes[h] = &core.HoleState{Kind: core.Empty}
				b.stripOf[h] = strip
			}
		}
	}

	railCols := []int{b.geom.leftRailLo, b.geom.leftRailHi, b.geom.rightRailLo, b.geom.rightRailHi}
	for r := 0; r < rows; r++ {
		for _, c := range railCols {
			h := core.Hole{Row: r, Col: c}
			b.holes[h] = &core.HoleState{Kind: core.Empty}
			b.railOf[h] = b.geom.railPolarity[c]
		}
	}
}

// resetBaseline clears the union-find and re-derives it from scratch:
// every strip's holes unioned together, every rail polarity's holes
// unioned together, and nothing else. This is the "empty-board
// baseline" RebuildUF always starts from.
func (b *Breadboard) resetBaseline() {
	b.uf.Reset()
	for h := range b.holes {
		b.uf.Add(h)
	}
	for _, strip := range b.stripOf {
		for i := 1; i < len(strip); i++ {
			b.uf.Union(strip[0], strip[i])
		}
	}
	var vplusHoles, gndHoles []core.Hole
	for h, pol := range b.railOf {
		switch pol {
		case core.VPlus:
			vplusHoles = append(vplusHoles, h)
		case core.GND:
			gndHoles = append(gndHoles, h)
		}
	}
	for _, group := range [][]core.Hole{vplusHoles, gndHoles} {
		for i := 1; i < len(group); i++ {
			b.uf.Union(group[0], group[i])
		}
	}
}

// RebuildUF resets connectivity to the empty-board baseline, then unions
// consecutive holes of every committed wire segment across every net in
// nets. Callers must invoke this after any wire release so that UF
// reflects only currently-claimed wiring (UF is derived state, never
// surgically patched on release, per the spec's "Shared-resource policy").
func (b *Breadboard) RebuildUF(nets map[string]*core.Net) {
	b.resetBaseline()
	// Deterministic net iteration order for reproducible failures.
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, path := range nets[name].SegPaths {
			for i := 1; i < len(path); i++ {
				b.uf.Union(path[i-1], path[i])
			}
		}
	}
}

// UF exposes the board's union-find for read-only connectivity queries
// (Find, Connected) by the router and shorts checker.
func (b *Breadboard) UF() *unionfind.UF[core.Hole] { return b.uf }

// IsRealHole reports whether h is a real hole on this board (board half
// or rail; never a trough or gap column).
func (b *Breadboard) IsRealHole(h core.Hole) bool {
	_, ok := b.holes[h]
	return ok
}

// State returns h's current occupancy state.
func (b *Breadboard) State(h core.Hole) (core.HoleState, bool) {
	s, ok := b.holes[h]
	if !ok {
		return core.HoleState{}, false
	}
	return *s, true
}

// IsEmpty reports whether h is a real, currently-unoccupied hole.
func (b *Breadboard) IsEmpty(h core.Hole) bool {
	s, ok := b.holes[h]
	return ok && s.Kind == core.Empty
}

// StripOf returns the full strip (all holes in the same row and half)
// containing board hole h.
func (b *Breadboard) StripOf(h core.Hole) ([]core.Hole, bool) {
	s, ok := b.stripOf[h]
	return s, ok
}

// RailOf returns the polarity of rail hole h.
func (b *Breadboard) RailOf(h core.Hole) (core.Polarity, bool) {
	p, ok := b.railOf[h]
	return p, ok
}

// IsTroughCol reports whether col falls within the central trough.
func (b *Breadboard) IsTroughCol(col int) bool { return b.geom.isTrough(col) }

// IsGapCol reports whether col falls in a gap column (no holes at all,
// on either side of the board).
func (b *Breadboard) IsGapCol(col int) bool { return b.geom.isGap(col) }

// IsBoardHole reports whether h is a board-half hole (a strip member),
// as opposed to a rail hole. Components may only occupy board holes.
func (b *Breadboard) IsBoardHole(h core.Hole) bool {
	_, ok := b.stripOf[h]
	return ok
}

// NearestRailDistance returns the smallest Manhattan distance from h to
// any rail hole of polarity pol, used by the placement search's scoring
// heuristic (distance to the nearer rail column).
func (b *Breadboard) NearestRailDistance(h core.Hole, pol core.Polarity) int {
	best := -1
	for rh, p := range b.railOf {
		if p != pol {
			continue
		}
		d := absInt(h.Row-rh.Row) + absInt(h.Col-rh.Col)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RailRepresentative returns a deterministic (smallest row, then column)
// hole on the named rail, for use as the "one representative hole per
// fixed anchor" the router groups a net's terminals against.
func (b *Breadboard) RailRepresentative(pol core.Polarity) (core.Hole, bool) {
	best := core.Hole{}
	found := false
	for h, p := range b.railOf {
		if p != pol {
			continue
		}
		if !found || h.Row < best.Row || (h.Row == best.Row && h.Col < best.Col) {
			best = h
			found = true
		}
	}
	return best, found
}

// AllHoles returns every real hole in stable row-major, then column
// order — the iteration order the G-code emitter and renderer rely on
// for deterministic output.
func (b *Breadboard) AllHoles() []core.Hole {
	out := make([]core.Hole, 0, len(b.holes))
	for h := range b.holes {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// claimHoles validates every hole in holes is real and empty, then
// transitions endpoints to endKind and interior holes to bodyKind,
// tagging all with ownerID. On any validation failure, no hole is
// mutated and the call returns a wrapped sentinel error.
func (b *Breadboard) claimHoles(ownerID string, holes []core.Hole, endKind, bodyKind core.Occupancy) error {
	if len(holes) == 0 {
		return ErrEmptyHoleList
	}
	for _, h := range holes {
		s, ok := b.holes[h]
		if !ok {
			return fmt.Errorf("%w: %s", ErrHoleNotReal, h)
		}
		if s.Kind != core.Empty {
			return fmt.Errorf("%w: %s", ErrHoleOccupied, h)
		}
	}
	last := len(holes) - 1
	for i, h := range holes {
		kind := bodyKind
		if i == 0 || i == last {
			kind = endKind
		}
		b.holes[h].Kind = kind
		b.holes[h].OwnerID = ownerID
	}
	return nil
}

// releaseHoles resets every hole in holes to Empty, regardless of their
// current tag. Releasing an already-empty hole is a no-op for that hole
// (release-idempotence, per the spec's testable laws).
func (b *Breadboard) releaseHoles(holes []core.Hole) {
	for _, h := range holes {
		if s, ok := b.holes[h]; ok {
			s.Kind = core.Empty
			s.OwnerID = ""
		}
	}
}

// ClaimComponent claims every hole of body (body[0] and body[len-1]
// become CompPin, interior holes CompBody) on behalf of component id.
// Fails without mutating anything if any hole is not real or not empty.
func (b *Breadboard) ClaimComponent(id string, body []core.Hole) error {
	return b.claimHoles(id, body, core.CompPin, core.CompBody)
}

// ReleaseComponent releases every hole of body back to Empty.
func (b *Breadboard) ReleaseComponent(body []core.Hole) {
	b.releaseHoles(body)
}

// ClaimWireSegment claims every hole of holes (endpoints become WireEnd,
// interior holes WireBody) on behalf of wire segment segID.
func (b *Breadboard) ClaimWireSegment(segID string, holes []core.Hole) error {
	return b.claimHoles(segID, holes, core.WireEnd, core.WireBody)
}

// ReleaseWireSegment releases every hole of holes back to Empty.
func (b *Breadboard) ReleaseWireSegment(holes []core.Hole) {
	b.releaseHoles(holes)
}

// FrontierOfHole returns the empty holes available as jumper landing
// sites for h: the other empty holes of h's strip for a board hole, or
// every empty hole on h's rail (h itself included when empty) for a rail
// hole.
func (b *Breadboard) FrontierOfHole(h core.Hole) []core.Hole {
	if pol, ok := b.railOf[h]; ok {
		return b.FrontierOfAnchor(pol)
	}
	strip, ok := b.stripOf[h]
	if !ok {
		return nil
	}
	out := make([]core.Hole, 0, len(strip)-1)
	for _, s := range strip {
		if s != h && b.IsEmpty(s) {
			out = append(out, s)
		}
	}
	return out
}

// FrontierOfAnchor returns every currently-empty hole on the named rail.
func (b *Breadboard) FrontierOfAnchor(pol core.Polarity) []core.Hole {
	var out []core.Hole
	for h, p := range b.railOf {
		if p == pol && b.IsEmpty(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
