package placement

import (
	"sort"

	"breadboardpnr/core"
)

// orderComponents returns a copy of components sorted by
// (-rail_weight, -length, name), the order the source spec prescribes:
// rail-anchored, longer components constrain the solution space the
// most and so are placed first.
func orderComponents(components []*core.Passive) []*core.Passive {
	ordered := make([]*core.Passive, len(components))
	copy(ordered, components)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.RailWeight() != b.RailWeight() {
			return a.RailWeight() > b.RailWeight()
		}
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		return a.Name < b.Name
	})
	return ordered
}
