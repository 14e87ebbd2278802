package core

// Net is a named electrical node: the set of component pins that must
// end up electrically connected, plus (for V+ and GND) the rail(s) it is
// tied to and the jumper segments committed so far to realize it.
type Net struct {
	Name string

	// FixedAnchors ties this net to one or both rails. Populated when
	// Name is "V+" or "GND"; empty for ordinary internal nets.
	FixedAnchors map[Polarity]bool

	// Terms holds every pin hole currently bound to this net.
	Terms []Hole

	// SegPaths holds, for each committed jumper segment realizing this
	// net, the ordered list of collinear positions it spans from endpoint
	// to endpoint (positions in trough and gap columns included).
	SegPaths [][]Hole
}

// NewNet returns an empty net named name. Rail nets ("V+", "GND") get
// their FixedAnchors populated automatically.
func NewNet(name string) *Net {
	n := &Net{Name: name, FixedAnchors: make(map[Polarity]bool)}
	switch name {
	case "V+":
		n.FixedAnchors[VPlus] = true
	case "GND":
		n.FixedAnchors[GND] = true
	}
	return n
}

// IsRail reports whether this net is tied to any rail.
func (n *Net) IsRail() bool { return len(n.FixedAnchors) > 0 }

// AddTerm attaches a pin hole to the net's term list.
func (n *Net) AddTerm(h Hole) {
	n.Terms = append(n.Terms, h)
}

// RemoveTerm removes the first occurrence of h from the term list, used
// when the placement search backtracks and unbinds a candidate's pins.
func (n *Net) RemoveTerm(h Hole) {
	for i, t := range n.Terms {
		if t == h {
			n.Terms = append(n.Terms[:i], n.Terms[i+1:]...)
			return
		}
	}
}

// AddSegPath records a newly committed jumper segment's holes.
func (n *Net) AddSegPath(holes []Hole) {
	n.SegPaths = append(n.SegPaths, holes)
}

// PopSegPaths removes and returns the last k committed segment paths,
// used to roll back a partially committed route on failure.
func (n *Net) PopSegPaths(k int) [][]Hole {
	if k > len(n.SegPaths) {
		k = len(n.SegPaths)
	}
	popped := n.SegPaths[len(n.SegPaths)-k:]
	n.SegPaths = n.SegPaths[:len(n.SegPaths)-k]
	out := make([][]Hole, len(popped))
	copy(out, popped)
	return out
}
