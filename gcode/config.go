// Package gcode implements the G-code emitter (GE): a deterministic
// transformer from a solved layout to a pick-and-place motion program.
//
// Per the source spec's design notes, the module-level dictionaries the
// original relies on (column_to_x special-casing, a shared wires_used
// counter, a global GCODE buffer) become fields of an Emitter value
// constructed once per solve: a Config, a PickupTrayLayout, and private
// per-instance wire-slot counters.
package gcode

// Config holds the physical constants the emitter transforms hole
// coordinates and tray coordinates through.
type Config struct {
	// Pitch is the hole-to-hole spacing in mm (spec default 2.54).
	Pitch float64

	// ColumnOverrides lets specific columns use a physical X offset
	// other than col*Pitch. The source spec's "special spans" near the
	// rails are modeled here as an explicit per-column override table
	// rather than hardcoded in the transform, per its own open question.
	ColumnOverrides map[int]float64

	XOriginPickup, YOriginPickup       float64
	XOriginPlacement, YOriginPlacement float64

	// PickupZ, PlaceZ, PassiveZ are named Z heights (mm); TravelApproachZ
	// is the intermediate height used while moving over XY before
	// descending to a pickup or placement.
	PickupZ, PlaceZ, PassiveZ float64
	TravelApproachZ           float64
}

// DefaultConfig returns the spec's stated defaults: 2.54mm pitch, no
// column overrides, pickup tray at the origin, placement area offset
// 150mm in X, and a conservative Z stack.
func DefaultConfig() Config {
	return Config{
		Pitch:             2.54,
		XOriginPickup:     0,
		YOriginPickup:     0,
		XOriginPlacement:  150,
		YOriginPlacement:  0,
		PickupZ:           5,
		PlaceZ:            5,
		PassiveZ:          20,
		TravelApproachZ:   25,
	}
}

// ColumnToX returns the board-local X coordinate for column col.
func (c Config) ColumnToX(col int) float64 {
	if x, ok := c.ColumnOverrides[col]; ok {
		return x
	}
	return float64(col) * c.Pitch
}

// RowToY returns the board-local Y coordinate for a (possibly
// fractional, for tray-slot centroids) row position.
func (c Config) RowToY(row float64) float64 {
	return row * c.Pitch
}

// PickupBed maps a board-local (x, y) in the pickup tray's coordinate
// space to machine bed coordinates.
func (c Config) PickupBed(x, y float64) (float64, float64) {
	return c.XOriginPickup + x, c.YOriginPickup - y
}

// PlacementBed maps a board-local (x, y) on the breadboard to machine
// bed coordinates.
func (c Config) PlacementBed(x, y float64) (float64, float64) {
	return c.XOriginPlacement + x, c.YOriginPlacement - y
}
