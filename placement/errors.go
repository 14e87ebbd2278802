package placement

import "errors"

// ErrPlacementExhausted indicates the backtracking search tried every
// candidate placement, at every depth, without reaching a layout that
// placed all components and routed all nets.
var ErrPlacementExhausted = errors.New("placement: exhausted all candidates")
