// Package placement implements the placement search (PS): a depth-first
// backtracking search that assigns every component a legal body of
// holes, guided by a forward check (admissibility) and a scoring
// heuristic (candidate ordering), and that calls back into full routing
// once every component is placed.
//
// The claim/recurse/release-on-backtrack shape mirrors dfs.dfsWalker's
// traverse method: a small struct carries the search's fixed inputs, and
// a recursive method does the work, undoing its own mutation on every
// exit path that isn't success.
package placement

import (
	"breadboardpnr/board"
	"breadboardpnr/core"
)

// Validator is called once every component has a candidate placement and
// its pins are bound into nets. It should attempt full routing and the
// post-route shorts check; a non-nil return causes the search to
// backtrack as if this depth's candidate had failed.
type Validator func() error

type searcher struct {
	b        *board.Breadboard
	nets     map[string]*core.Net
	all      []*core.Passive
	cfg      Config
	validate Validator
}

// Search orders components by (-rail_weight, -length, name) and runs a
// depth-first backtracking search over their candidate placements. On
// success every component's Placed/Anchor/Body/Pin fields and every
// bound net's Terms reflect the winning layout, and any committed wiring
// from the caller-supplied Validator remains on the board. On failure,
// every component is released and every net binding undone, and
// ErrPlacementExhausted is returned.
func Search(b *board.Breadboard, nets map[string]*core.Net, components []*core.Passive, cfg Config, validate Validator) error {
	s := &searcher{b: b, nets: nets, all: components, cfg: cfg, validate: validate}
	ordered := orderComponents(components)
	if s.place(ordered, 0) {
		return nil
	}
	return ErrPlacementExhausted
}

// place tries to seat ordered[depth..] onto the board. At depth ==
// len(ordered), every component has a candidate; it hands off to the
// validator (full routing + shorts check) and reports that outcome.
func (s *searcher) place(ordered []*core.Passive, depth int) bool {
	if depth == len(ordered) {
		if s.validate == nil {
			return true
		}
		return s.validate() == nil
	}

	comp := ordered[depth]
	cands := rankCandidates(s.b, s.nets, s.all, comp, candidatesFor(s.b, comp))
	if s.cfg.TopKCandidates > 0 && len(cands) > s.cfg.TopKCandidates {
		cands = cands[:s.cfg.TopKCandidates]
	}

	for _, cand := range cands {
		if err := s.b.ClaimComponent(comp.Name, cand.body); err != nil {
			continue
		}
		comp.SetPlacement(cand.body)

		netA := getOrCreateNet(s.nets, comp.NetA)
		netB := getOrCreateNet(s.nets, comp.NetB)
		netA.AddTerm(cand.pinA)
		netB.AddTerm(cand.pinB)

		if forwardCheck(s.b, s.nets, comp, cand, s.cfg) && s.place(ordered, depth+1) {
			return true
		}

		netA.RemoveTerm(cand.pinA)
		netB.RemoveTerm(cand.pinB)
		comp.ClearPlacement()
		s.b.ReleaseComponent(cand.body)
	}
	return false
}
