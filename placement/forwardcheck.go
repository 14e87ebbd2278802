package placement

import (
	"breadboardpnr/board"
	"breadboardpnr/core"
	"breadboardpnr/router"
)

// forwardCheck implements the source spec's three admissibility
// conditions for a just-claimed candidate: strip/net consistency for
// each pin, no foreign-net terminal sharing either pin's strip, and a
// bounded-hop reachability estimate to each pin's net.
func forwardCheck(b *board.Breadboard, nets map[string]*core.Net, comp *core.Passive, cand candidate, cfg Config) bool {
	stripA, _ := b.StripOf(cand.pinA)
	stripB, _ := b.StripOf(cand.pinB)

	if sameStrip(stripA, stripB) && comp.NetA != comp.NetB {
		return false
	}
	if !stripFreeOfForeignNet(nets, stripA, comp.NetA) {
		return false
	}
	if !stripFreeOfForeignNet(nets, stripB, comp.NetB) {
		return false
	}
	if !reachableForPin(b, nets, cand.pinA, comp.NetA, cfg) {
		return false
	}
	if !reachableForPin(b, nets, cand.pinB, comp.NetB, cfg) {
		return false
	}
	return true
}

func sameStrip(a, b []core.Hole) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return a[0] == b[0]
}

// stripFreeOfForeignNet reports whether no hole of strip already carries
// a terminal of a net other than netName.
func stripFreeOfForeignNet(nets map[string]*core.Net, strip []core.Hole, netName string) bool {
	for name, net := range nets {
		if name == netName {
			continue
		}
		for _, t := range net.Terms {
			for _, h := range strip {
				if t == h {
					return false
				}
			}
		}
	}
	return true
}

// reachableForPin reports whether pin can still reach net netName's
// existing targets within cfg.MaxSegments jumper hops. By the time this
// runs, pin is already among net.Terms (the search binds pins before
// forward-checking them), so pin's own terminal is excluded from the
// target set — otherwise pin would always trivially "reach" itself. A
// net with no other terminal and no rail anchor is trivially reachable
// (pin is the first terminal); a rail net is always checked against its
// rail frontier, since the rail itself is an ever-present target.
func reachableForPin(b *board.Breadboard, nets map[string]*core.Net, pin core.Hole, netName string, cfg Config) bool {
	net := peekNet(nets, netName)

	var target []core.Hole
	for _, t := range net.Terms {
		if t == pin {
			continue
		}
		target = append(target, b.FrontierOfHole(t)...)
	}
	for pol := range net.FixedAnchors {
		target = append(target, b.FrontierOfAnchor(pol)...)
	}
	if len(target) == 0 {
		return true
	}

	pinFrontier := b.FrontierOfHole(pin)
	if len(pinFrontier) == 0 {
		return false
	}
	return router.Reachable(b, pinFrontier, target, b.WireLengths(), cfg.MaxSegments)
}

// peekNet returns nets[name] if present, or an ephemeral NewNet(name)
// otherwise, without mutating nets. Used so the forward check can ask
// "is this a rail net with no terms yet" before the search has
// committed to creating the net.
func peekNet(nets map[string]*core.Net, name string) *core.Net {
	if n, ok := nets[name]; ok {
		return n
	}
	return core.NewNet(name)
}

// getOrCreateNet returns nets[name], creating and storing a new Net if
// absent. Internal nets already exist from netlist translation; rail
// nets ("V+", "GND") are created lazily the first time a component binds
// to one.
func getOrCreateNet(nets map[string]*core.Net, name string) *core.Net {
	if n, ok := nets[name]; ok {
		return n
	}
	n := core.NewNet(name)
	nets[name] = n
	return n
}
