// Package shorts implements the post-route shorts checker (SC): it
// confirms that no two distinct nets with terminals ended up sharing a
// union-find representative, which would mean two electrically distinct
// nets got physically tied together by strips, rails, or wiring.
//
// Grounded on the representative-comparison idiom already used by
// unionfind.UF.Connected, applied across every net's terminal set rather
// than a single pair of holes.
package shorts

import (
	"sort"

	"breadboardpnr/board"
	"breadboardpnr/core"
)

// Check reports the first short found: two distinct nets, each with at
// least one terminal, whose terminals resolve to the same UF
// representative. Nets are scanned in sorted name order so a given board
// state always reports the same pair.
func Check(b *board.Breadboard, nets map[string]*core.Net) error {
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)

	owner := make(map[core.Hole]string)
	for _, name := range names {
		net := nets[name]
		if len(net.Terms) == 0 {
			continue
		}
		for _, t := range net.Terms {
			rep := b.UF().Find(t)
			if existing, ok := owner[rep]; ok && existing != name {
				return &ShortError{NetA: existing, NetB: name}
			}
			owner[rep] = name
		}
	}
	return nil
}
