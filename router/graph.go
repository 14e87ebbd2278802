package router

import (
	"sort"

	"breadboardpnr/board"
	"breadboardpnr/core"
)

// direction is one of the four cardinal steps a jumper may travel along.
type direction struct{ dRow, dCol int }

var cardinalDirections = []direction{
	{dRow: 1, dCol: 0},
	{dRow: -1, dCol: 0},
	{dRow: 0, dCol: 1},
	{dRow: 0, dCol: -1},
}

// alignment reports the direction and Manhattan length between s and d if
// they are row-aligned or column-aligned, or ok=false otherwise.
func alignment(s, d core.Hole) (dir direction, length int, ok bool) {
	switch {
	case s.Row == d.Row && s.Col != d.Col:
		if d.Col > s.Col {
			return direction{dRow: 0, dCol: 1}, d.Col - s.Col, true
		}
		return direction{dRow: 0, dCol: -1}, s.Col - d.Col, true
	case s.Col == d.Col && s.Row != d.Row:
		if d.Row > s.Row {
			return direction{dRow: 1, dCol: 0}, d.Row - s.Row, true
		}
		return direction{dRow: -1, dCol: 0}, s.Row - d.Row, true
	default:
		return direction{}, 0, false
	}
}

// segmentHoles returns the length+1 collinear holes from s to s+dir*length
// inclusive.
func segmentHoles(s core.Hole, dir direction, length int) []core.Hole {
	out := make([]core.Hole, 0, length+1)
	for i := 0; i <= length; i++ {
		out = append(out, core.Hole{Row: s.Row + dir.dRow*i, Col: s.Col + dir.dCol*i})
	}
	return out
}

// sortHoles returns a deterministic (row, then column) ordering of hs,
// used throughout the router to make candidate and BFS-visit order
// reproducible across runs.
func sortHoles(hs []core.Hole) []core.Hole {
	out := make([]core.Hole, len(hs))
	copy(out, hs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// containsWireLength reports whether length is a member of lengths.
func containsWireLength(lengths []int, length int) bool {
	for _, l := range lengths {
		if l == length {
			return true
		}
	}
	return false
}

// lineIsEmpty reports whether every real hole strictly between s and d
// (exclusive of the endpoints) is empty and not a rail hole. Positions in
// trough and gap columns have no hole and are passed over. The endpoints
// themselves are not checked.
func lineIsEmpty(b *board.Breadboard, s, d core.Hole, dir direction, length int) bool {
	for i := 1; i < length; i++ {
		h := core.Hole{Row: s.Row + dir.dRow*i, Col: s.Col + dir.dCol*i}
		if !b.IsRealHole(h) {
			continue
		}
		if !b.IsEmpty(h) {
			return false
		}
		if _, isRail := b.RailOf(h); isRail {
			return false
		}
	}
	return true
}

// neighbors returns the empty real holes reachable from u by exactly one
// legal jumper: end hole real and empty, every strictly-interior real
// hole empty, and no rail hole in the strict interior.
func neighbors(b *board.Breadboard, u core.Hole, lengths []int) []core.Hole {
	var out []core.Hole
	for _, length := range lengths {
		for _, dir := range cardinalDirections {
			end := core.Hole{Row: u.Row + dir.dRow*length, Col: u.Col + dir.dCol*length}
			if !b.IsRealHole(end) || !b.IsEmpty(end) {
				continue
			}
			if !lineIsEmpty(b, u, end, dir, length) {
				continue
			}
			out = append(out, end)
		}
	}
	return sortHoles(out)
}

// tryStraightJumper enumerates (s, d) pairs with s in srcs, d in dsts,
// aligned and Manhattan-distant by a member of lengths, sorted by length
// ascending, and returns the first pair whose line is entirely empty.
func tryStraightJumper(b *board.Breadboard, srcs, dsts []core.Hole, lengths []int) (core.Hole, core.Hole, bool) {
	type pair struct {
		s, d   core.Hole
		length int
	}
	var candidates []pair
	for _, s := range srcs {
		for _, d := range dsts {
			dir, length, ok := alignment(s, d)
			if !ok || !containsWireLength(lengths, length) {
				continue
			}
			if !lineIsEmpty(b, s, d, dir, length) {
				continue
			}
			candidates = append(candidates, pair{s: s, d: d, length: length})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].length != candidates[j].length {
			return candidates[i].length < candidates[j].length
		}
		if candidates[i].s != candidates[j].s {
			return lessHole(candidates[i].s, candidates[j].s)
		}
		return lessHole(candidates[i].d, candidates[j].d)
	})
	if len(candidates) == 0 {
		return core.Hole{}, core.Hole{}, false
	}
	return candidates[0].s, candidates[0].d, true
}

func lessHole(a, b core.Hole) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// holeSet converts hs into a lookup set.
func holeSet(hs []core.Hole) map[core.Hole]bool {
	set := make(map[core.Hole]bool, len(hs))
	for _, h := range hs {
		set[h] = true
	}
	return set
}

// visitCap bounds the number of BFS expansions, per the source spec's
// "cap visits at 2000".
const visitCap = 2000

// bfsPath runs a multi-source BFS over the jumper-segment graph from srcs
// to any hole in dsts, bounded by maxHops (< 0 means unlimited) and
// visitCap total expansions. Ties among equally-short frontiers are
// broken by the deterministic hole ordering neighbors() already applies,
// so the first path dequeued is stable across runs with the same board
// state.
func bfsPath(b *board.Breadboard, srcs, dsts []core.Hole, lengths []int, maxHops int) ([]core.Hole, bool) {
	dst := holeSet(dsts)
	visited := make(map[core.Hole]bool)
	parent := make(map[core.Hole]core.Hole)
	depth := make(map[core.Hole]int)

	var queue []core.Hole
	for _, s := range sortHoles(srcs) {
		if !visited[s] {
			visited[s] = true
			depth[s] = 0
			queue = append(queue, s)
		}
	}

	visited2 := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited2++
		if visited2 > visitCap {
			break
		}
		if dst[u] {
			return reconstructPath(parent, u), true
		}
		if maxHops >= 0 && depth[u] >= maxHops {
			continue
		}
		for _, v := range neighbors(b, u, lengths) {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return nil, false
}

func reconstructPath(parent map[core.Hole]core.Hole, end core.Hole) []core.Hole {
	path := []core.Hole{end}
	cur := end
	for {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append([]core.Hole{p}, path...)
		cur = p
	}
	return path
}

// Reachable reports whether dst is reachable from src within maxSegments
// jumper hops, without committing anything. This realizes the placement
// search's forward-check reachability test (source spec §4.4 condition 3).
func Reachable(b *board.Breadboard, src, dst []core.Hole, lengths []int, maxSegments int) bool {
	if len(src) == 0 || len(dst) == 0 {
		return false
	}
	srcSet := holeSet(src)
	for _, d := range dst {
		if srcSet[d] {
			return true
		}
	}
	_, ok := bfsPath(b, src, dst, lengths, maxSegments)
	return ok
}

// FindPathEdges implements find_path_edges: empty path if src and dst
// frontiers intersect, else a single straight jumper if one fits, else a
// BFS path over the segment graph (hop-unbounded, visit-capped). The
// result is a list of (s, d) edges; nil with ok=false means no path.
func FindPathEdges(b *board.Breadboard, src, dst []core.Hole, lengths []int) ([][2]core.Hole, bool) {
	srcSet := holeSet(src)
	for _, d := range dst {
		if srcSet[d] {
			return [][2]core.Hole{}, true
		}
	}

	if s, d, ok := tryStraightJumper(b, src, dst, lengths); ok {
		return [][2]core.Hole{{s, d}}, true
	}

	path, ok := bfsPath(b, src, dst, lengths, -1)
	if !ok {
		return nil, false
	}
	edges := make([][2]core.Hole, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		edges = append(edges, [2]core.Hole{path[i-1], path[i]})
	}
	return edges, true
}
