package gcode

import "fmt"

// TraySlot describes one pickup-tray lane: the tray column holding
// successive instances of a part type, and how many hole-widths each
// instance occupies along that lane.
type TraySlot struct {
	Col   int
	Holes int
}

// PickupTrayLayout maps a part family key (a component's letter prefix,
// e.g. "R", "C", "LED", or a wire class like "W4") to its tray slot.
// This is plain data passed into an Emitter, replacing the source
// spec's module-level col_dict/len_dict.
type PickupTrayLayout struct {
	Slots map[string]TraySlot
}

// DefaultPickupTrayLayout returns one lane per passive family plus one
// lane per default wire-length class ({1, 3, 5} -> W2, W4, W6).
func DefaultPickupTrayLayout() PickupTrayLayout {
	return PickupTrayLayout{
		Slots: map[string]TraySlot{
			"R":   {Col: -10, Holes: 3},
			"C":   {Col: -11, Holes: 3},
			"L":   {Col: -12, Holes: 3},
			"D":   {Col: -13, Holes: 3},
			"LED": {Col: -14, Holes: 3},
			"W2":  {Col: -20, Holes: 2},
			"W4":  {Col: -21, Holes: 4},
			"W6":  {Col: -22, Holes: 6},
		},
	}
}

// WithPickupTray returns DefaultPickupTrayLayout with overrides merged
// in, letting a caller add or replace individual lanes (e.g. a longer
// wire class, or a part family absent from the default set) without
// rebuilding the whole table.
func WithPickupTray(overrides map[string]TraySlot) PickupTrayLayout {
	layout := DefaultPickupTrayLayout()
	for key, slot := range overrides {
		layout.Slots[key] = slot
	}
	return layout
}

// WireFamilyKey returns the tray family key for a wire segment of the
// given Manhattan length: a segment of length L occupies L+1 holes, so a
// length-5 jumper (6 holes) keys as "W6".
func WireFamilyKey(manhattanLength int) string {
	return fmt.Sprintf("W%d", manhattanLength+1)
}

// ComponentFamilyKey returns the tray family key for a component
// instance name: the leading run of non-digit characters, so "R1" keys
// as "R" and both "LED" and "LED1" key as "LED".
func ComponentFamilyKey(name string) string {
	i := 0
	for i < len(name) && (name[i] < '0' || name[i] > '9') {
		i++
	}
	if i == 0 {
		return name
	}
	return name[:i]
}

// slotCenter returns the board-local (x, y) of the n'th (1-indexed)
// instance center in slot: the mean of its two bounding row positions,
// per the source spec's pickup-center formula.
func slotCenter(cfg Config, slot TraySlot, n int) (x, y float64) {
	span := float64(slot.Holes - 1)
	rowLo := float64(n-1) * span
	rowHi := float64(n) * span
	rowCenter := (rowLo + rowHi) / 2
	return cfg.ColumnToX(slot.Col), cfg.RowToY(rowCenter)
}
