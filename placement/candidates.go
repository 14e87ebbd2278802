package placement

import (
	"sort"

	"breadboardpnr/board"
	"breadboardpnr/core"
)

// candidate is one legal (unscored) placement for a component: the full
// body, anchor-first, and its two pin holes.
type candidate struct {
	body       []core.Hole
	pinA, pinB core.Hole
}

// candidatesFor enumerates every legal candidate for comp: a body
// starting at each board hole and extending comp.Length-1 steps in
// comp.Orient, rejected if any body hole is off-board, in the trough, on
// a rail, or already occupied, or if either pin's strip has no other
// empty hole to land a jumper on.
func candidatesFor(b *board.Breadboard, comp *core.Passive) []candidate {
	var out []candidate
	for _, h := range b.AllHoles() {
		if !b.IsBoardHole(h) {
			continue
		}
		body := buildBody(h, comp.Orient, comp.Length)
		if !bodyIsLegal(b, body) {
			continue
		}
		pinA, pinB := body[0], body[len(body)-1]
		if len(b.FrontierOfHole(pinA)) == 0 || len(b.FrontierOfHole(pinB)) == 0 {
			continue
		}
		out = append(out, candidate{body: body, pinA: pinA, pinB: pinB})
	}
	return out
}

// buildBody lays out length collinear holes starting at start, stepping
// along rows for Vertical orientation or columns for Horizontal.
func buildBody(start core.Hole, orient core.Orientation, length int) []core.Hole {
	body := make([]core.Hole, length)
	for i := 0; i < length; i++ {
		if orient == core.Horizontal {
			body[i] = core.Hole{Row: start.Row, Col: start.Col + i}
		} else {
			body[i] = core.Hole{Row: start.Row + i, Col: start.Col}
		}
	}
	return body
}

// bodyIsLegal reports whether every hole of body is a real, empty board
// hole. Because trough, gap, and rail columns are never registered as
// board holes, this single check also enforces "a component never spans
// the trough" and "a component never occupies a rail."
func bodyIsLegal(b *board.Breadboard, body []core.Hole) bool {
	for _, h := range body {
		if !b.IsBoardHole(h) || !b.IsEmpty(h) {
			return false
		}
	}
	return true
}

// scoredCandidate pairs a candidate with its heuristic score (smaller is
// better).
type scoredCandidate struct {
	cand  candidate
	score int
}

// rankCandidates scores every candidate and returns them sorted best
// first, with ties broken by the candidate's anchor hole so ordering is
// stable across runs (the source spec's "candidate stability" law).
func rankCandidates(b *board.Breadboard, nets map[string]*core.Net, all []*core.Passive, comp *core.Passive, cands []candidate) []candidate {
	scored := make([]scoredCandidate, len(cands))
	for i, c := range cands {
		scored[i] = scoredCandidate{cand: c, score: scoreCandidate(b, nets, all, comp, c)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score < scored[j].score
		}
		return lessHole(scored[i].cand.body[0], scored[j].cand.body[0])
	})
	out := make([]candidate, len(scored))
	for i, sc := range scored {
		out[i] = sc.cand
	}
	return out
}

// scoreCandidate sums each pin's distance contribution (to the nearer
// rail column for a rail net, or to the nearest existing terminal of its
// net otherwise) and subtracts a clustering bonus for components that
// share the same ordered pair of nets and sit nearby.
func scoreCandidate(b *board.Breadboard, nets map[string]*core.Net, all []*core.Passive, comp *core.Passive, cand candidate) int {
	s := pinScore(b, nets, comp.NetA, cand.pinA) + pinScore(b, nets, comp.NetB, cand.pinB)
	s -= clusterBonus(all, comp, cand)
	return s
}

func pinScore(b *board.Breadboard, nets map[string]*core.Net, netName string, pin core.Hole) int {
	switch netName {
	case "V+":
		return b.NearestRailDistance(pin, core.VPlus)
	case "GND":
		return b.NearestRailDistance(pin, core.GND)
	}
	net, ok := nets[netName]
	if !ok || len(net.Terms) == 0 {
		return 0
	}
	best := -1
	for _, t := range net.Terms {
		d := manhattan(pin, t)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// clusterBonus rewards placing a component near others already placed
// that share its exact (net_a, net_b) pair, within a small radius.
func clusterBonus(all []*core.Passive, comp *core.Passive, cand candidate) int {
	const radius = 5
	bonus := 0
	for _, other := range all {
		if other == comp || !other.Placed {
			continue
		}
		if other.NetA != comp.NetA || other.NetB != comp.NetB {
			continue
		}
		if d := manhattan(cand.body[0], other.Anchor); d < radius {
			bonus += radius - d
		}
	}
	return bonus
}

func manhattan(a, b core.Hole) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func lessHole(a, b core.Hole) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
