package shorts

import "fmt"

// ShortError reports that two distinct nets share a union-find
// representative after routing: a physical short. It carries both net
// names so callers can report or log the offending pair.
type ShortError struct {
	NetA, NetB string
}

func (e *ShortError) Error() string {
	return fmt.Sprintf("shorts: nets %q and %q are shorted", e.NetA, e.NetB)
}
