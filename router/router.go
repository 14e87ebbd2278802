// Package router implements the per-net wiring stage (RT): given a fully
// placed layout, it connects every net's terminals (and any fixed rail
// anchors) with straight jumpers of restricted length, falling back to a
// breadth-first search over the board's implicit jumper-segment graph
// when no single straight jumper suffices.
//
// The BFS-over-an-implicit-graph shape is grounded on lvlath/bfs.BFS,
// adapted from an explicit core.Graph walk to a board where edges
// (legal jumpers) are generated on demand from board occupancy rather
// than stored.
package router

import (
	"fmt"
	"sort"

	"breadboardpnr/board"
	"breadboardpnr/core"
)

// RouteNet routes a single net by name: it rebuilds UF, partitions the
// net's terminals (plus any fixed-anchor representative) into
// connectivity groups, and wires every non-base group to the base group
// with straight jumpers or a BFS fallback path. segCounter is shared
// across an entire RouteAll invocation so that segment ids stay unique.
func RouteNet(b *board.Breadboard, nets map[string]*core.Net, netName string, segCounter *int) error {
	net, ok := nets[netName]
	if !ok {
		return fmt.Errorf("router: unknown net %q", netName)
	}
	b.RebuildUF(nets)

	groupsByRep := make(map[core.Hole][]core.Hole)
	addToGroup := func(h core.Hole) {
		rep := b.UF().Find(h)
		groupsByRep[rep] = append(groupsByRep[rep], h)
	}
	for _, t := range net.Terms {
		addToGroup(t)
	}

	var anchorRep core.Hole
	hasAnchor := false
	for _, pol := range []core.Polarity{core.VPlus, core.GND} {
		if !net.FixedAnchors[pol] {
			continue
		}
		if h, ok := b.RailRepresentative(pol); ok {
			addToGroup(h)
			if !hasAnchor {
				anchorRep = b.UF().Find(h)
				hasAnchor = true
			}
		}
	}

	if len(groupsByRep) <= 1 {
		return nil
	}

	reps := make([]core.Hole, 0, len(groupsByRep))
	for rep := range groupsByRep {
		reps = append(reps, rep)
	}
	reps = sortHoles(reps)

	baseRep := reps[0]
	if hasAnchor {
		baseRep = anchorRep
	}
	baseHoles := append([]core.Hole{}, groupsByRep[baseRep]...)

	for _, rep := range reps {
		if rep == baseRep {
			continue
		}
		groupHoles := groupsByRep[rep]

		var srcFrontier, dstFrontier []core.Hole
		for _, h := range baseHoles {
			srcFrontier = append(srcFrontier, b.FrontierOfHole(h)...)
		}
		for _, h := range groupHoles {
			dstFrontier = append(dstFrontier, b.FrontierOfHole(h)...)
		}
		if len(srcFrontier) == 0 || len(dstFrontier) == 0 {
			return ErrRouteExhausted
		}

		edges, ok := FindPathEdges(b, srcFrontier, dstFrontier, b.WireLengths())
		if !ok {
			return ErrRouteExhausted
		}
		if len(edges) == 0 {
			baseHoles = append(baseHoles, groupHoles...)
			continue
		}
		if err := commitPath(b, net, edges, segCounter); err != nil {
			return err
		}
		baseHoles = append(baseHoles, groupHoles...)
		b.RebuildUF(nets)
	}
	return nil
}

// RouteAll routes every net in nets, in sorted name order, and rolls back
// every segment committed during this call (across all nets) if any net
// fails partway through.
func RouteAll(b *board.Breadboard, nets map[string]*core.Net) error {
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)

	segCounter := 0
	addedPerNet := make(map[string]int, len(nets))

	rollbackAll := func() {
		for name, n := range addedPerNet {
			if n == 0 {
				continue
			}
			popped := nets[name].PopSegPaths(n)
			for _, holes := range popped {
				b.ReleaseWireSegment(holes)
			}
		}
		b.RebuildUF(nets)
	}

	for _, name := range names {
		net := nets[name]
		before := len(net.SegPaths)
		err := RouteNet(b, nets, name, &segCounter)
		addedPerNet[name] += len(net.SegPaths) - before
		if err != nil {
			rollbackAll()
			return err
		}
	}
	return nil
}

// commitPath claims each edge's real holes (trough and gap columns have
// none) as a new wire segment and records the edge's full collinear run in
// the net's SegPaths, rejecting
// (and rolling back everything claimed so far in this call) on any rail-
// safety violation: a rail hole in an edge's strict interior, an edge
// endpoint on the wrong-polarity rail, or an internal net terminating on
// any rail.
func commitPath(b *board.Breadboard, net *core.Net, edges [][2]core.Hole, segCounter *int) error {
	committed := 0
	for _, edge := range edges {
		s, d := edge[0], edge[1]
		dir, length, ok := alignment(s, d)
		if !ok {
			releaseCommitted(b, net, committed)
			return fmt.Errorf("router: edge %s-%s is not collinear", s, d)
		}
		holes := segmentHoles(s, dir, length)

		for _, h := range holes[1 : len(holes)-1] {
			if _, isRail := b.RailOf(h); isRail {
				releaseCommitted(b, net, committed)
				return ErrRouteExhausted
			}
		}
		for _, h := range [2]core.Hole{s, d} {
			pol, isRail := b.RailOf(h)
			if !isRail {
				continue
			}
			if !net.IsRail() || !net.FixedAnchors[pol] {
				releaseCommitted(b, net, committed)
				return ErrRouteExhausted
			}
		}

		*segCounter++
		segID := fmt.Sprintf("%s-seg%d", net.Name, *segCounter)
		realHoles := make([]core.Hole, 0, len(holes))
		for _, h := range holes {
			if b.IsRealHole(h) {
				realHoles = append(realHoles, h)
			}
		}
		if err := b.ClaimWireSegment(segID, realHoles); err != nil {
			releaseCommitted(b, net, committed)
			return err
		}
		net.AddSegPath(holes)
		committed++
	}
	return nil
}

func releaseCommitted(b *board.Breadboard, net *core.Net, n int) {
	if n == 0 {
		return
	}
	popped := net.PopSegPaths(n)
	for _, holes := range popped {
		b.ReleaseWireSegment(holes)
	}
}
