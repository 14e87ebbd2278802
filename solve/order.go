package solve

import (
	"sort"

	"breadboardpnr/core"
)

// sortedNetNames returns nets's keys in sorted order, for the same
// reproducible-iteration reason every other package in this module sorts
// net names before walking a map.
func sortedNetNames(nets map[string]*core.Net) []string {
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
