package solve

import "errors"

// Sentinel error kinds a caller can match with errors.Is/errors.As,
// mirroring the source spec's distinct error tags.
var (
	// ErrMissingSupply reports that the netlist references "V+" but no
	// supply of the required shape was found while translating it.
	ErrMissingSupply = errors.New("solve: missing supply")

	// ErrPlacementExhausted reports that the DFS exhausted every
	// candidate placement without a routable, short-free layout.
	ErrPlacementExhausted = errors.New("solve: placement exhausted")

	// ErrInvariantViolation reports an internal bug: a board mutation
	// was rejected that the search should never have attempted.
	ErrInvariantViolation = errors.New("solve: invariant violation")
)
