package board

import "errors"

// Sentinel errors for breadboard occupancy operations. Every claim/release
// call that can fail returns one of these (possibly wrapped with
// fmt.Errorf("%w: ...", ...) to carry the offending hole), following the
// sentinel-error convention lvlath/core uses throughout this pack.
var (
	// ErrHoleNotReal indicates an operation referenced a hole outside the
	// board's real-hole set (a trough or gap column, or out of range).
	ErrHoleNotReal = errors.New("board: hole is not a real board hole")

	// ErrHoleOccupied indicates a claim targeted a hole that already
	// carries a non-empty occupancy tag.
	ErrHoleOccupied = errors.New("board: hole is already occupied")

	// ErrNotCollinear indicates a requested body or wire-segment hole list
	// is not a straight run of aligned, consecutive holes.
	ErrNotCollinear = errors.New("board: holes are not collinear")

	// ErrEmptyHoleList indicates a claim was attempted with no holes.
	ErrEmptyHoleList = errors.New("board: empty hole list")
)
