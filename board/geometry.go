package board

import "breadboardpnr/core"

// Config parametrizes the breadboard's fixed geometry. The zero value is
// not meaningful; use DefaultConfig and override individual fields.
//
// The left/right gap and rail columns are NOT configurable: per the
// source spec they are fixed offsets from the half-widths (two empty
// columns, then two rail columns, on each side of the board), the same
// way lvlath/builder's Grid(rows, cols) constructor treats its "r,c" ID
// scheme as a fixed convention rather than a tunable.
type Config struct {
	// Rows is the number of board rows, R. Holes exist for row in [0, Rows).
	Rows int

	// WL, WR are the left/right half widths (holes per strip on each
	// side). The spec's default is WL=WR=5.
	WL, WR int

	// WireLengths is the ordered set of Manhattan lengths a single
	// jumper is allowed to span. Must contain at least one value >= 1.
	WireLengths []int
}

// DefaultConfig returns the spec's default geometry: 30 rows, half-width
// 5 on each side, jumpers of length {1, 3, 5}.
func DefaultConfig() Config {
	return Config{
		Rows:        30,
		WL:          5,
		WR:          5,
		WireLengths: []int{1, 3, 5},
	}
}

// geometry holds the derived column boundaries computed once from Config.
type geometry struct {
	cfg Config

	leftHaloLo, leftHaloHi   int // left board half column range [lo, hi]
	troughLo, troughHi       int
	rightHaloLo, rightHaloHi int // right board half column range [lo, hi]

	leftGapLo, leftGapHi   int
	leftRailLo, leftRailHi int

	rightGapLo, rightGapHi   int
	rightRailLo, rightRailHi int

	// railPolarity maps a rail column to its polarity. The polarity-to-
	// column assignment is a calibration choice the original spec leaves
	// unfixed (see DESIGN.md); this module assigns the inner rail column
	// on each side to V+ and the outer to GND, mirrored left/right.
	railPolarity map[int]core.Polarity
}

func newGeometry(cfg Config) geometry {
	g := geometry{cfg: cfg}

	g.leftHaloLo, g.leftHaloHi = 0, cfg.WL-1
	g.troughLo, g.troughHi = cfg.WL, cfg.WL+1
	g.rightHaloLo, g.rightHaloHi = g.troughHi+1, g.troughHi+cfg.WR

	// Fixed offsets, independent of WL/WR: two gap columns then two rail
	// columns outward from each half.
	g.leftGapLo, g.leftGapHi = -2, -1
	g.leftRailLo, g.leftRailHi = -4, -3

	g.rightGapLo = g.rightHaloHi + 1
	g.rightGapHi = g.rightHaloHi + 2
	g.rightRailLo = g.rightHaloHi + 3
	g.rightRailHi = g.rightHaloHi + 4

	g.railPolarity = map[int]core.Polarity{
		g.leftRailLo:  core.GND,
		g.leftRailHi:  core.VPlus,
		g.rightRailLo: core.VPlus,
		g.rightRailHi: core.GND,
	}
	return g
}

// isTrough reports whether col falls in the central trough.
func (g geometry) isTrough(col int) bool {
	return col >= g.troughLo && col <= g.troughHi
}

// isGap reports whether col falls in a gap column (no holes at all).
func (g geometry) isGap(col int) bool {
	return (col >= g.leftGapLo && col <= g.leftGapHi) ||
		(col >= g.rightGapLo && col <= g.rightGapHi)
}

// isBoardCol reports whether col belongs to the left or right board half.
func (g geometry) isBoardCol(col int) bool {
	return (col >= g.leftHaloLo && col <= g.leftHaloHi) ||
		(col >= g.rightHaloLo && col <= g.rightHaloHi)
}

// isLeftHalf reports whether a board column is on the left half.
func (g geometry) isLeftHalf(col int) bool {
	return col >= g.leftHaloLo && col <= g.leftHaloHi
}

// isRailCol reports whether col is a rail column and, if so, its polarity.
func (g geometry) isRailCol(col int) (core.Polarity, bool) {
	p, ok := g.railPolarity[col]
	return p, ok
}

// stripBounds returns the [lo, hi] column range of the strip containing
// board column col (col must satisfy isBoardCol).
func (g geometry) stripBounds(col int) (lo, hi int) {
	if g.isLeftHalf(col) {
		return g.leftHaloLo, g.leftHaloHi
	}
	return g.rightHaloLo, g.rightHaloHi
}
