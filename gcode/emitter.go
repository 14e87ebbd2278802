package gcode

import (
	"fmt"
	"sort"
	"strings"

	"breadboardpnr/core"
)

// Result is the emitter's output: the full G-code program text, plus the
// instance name of every component, and a "wire(<family>)" label for
// every wire segment, that had no pickup-tray entry (GcodeUnknownPart,
// per the source spec's error design — collected and skipped, not a
// hard failure).
type Result struct {
	Program      string
	SkippedParts []string
}

// Emitter turns a solved layout into a G-code program. Its wire-slot
// counters are instance fields (not package state), so two Emitters
// never interfere with each other's numbering.
type Emitter struct {
	cfg      Config
	tray     PickupTrayLayout
	wireSlot map[string]int
}

// NewEmitter constructs an Emitter bound to cfg and tray.
func NewEmitter(cfg Config, tray PickupTrayLayout) *Emitter {
	return &Emitter{cfg: cfg, tray: tray, wireSlot: make(map[string]int)}
}

// Emit produces the full pick-and-place program for components (every
// one of which must already be Placed) and nets (whose SegPaths carry
// the committed wiring). Components are visited in sorted name order;
// wires are visited net-by-net in sorted net name order, and within a
// net in commit (stored) order — the source spec's required stable
// iteration for byte-identical repeat runs.
func (e *Emitter) Emit(components []*core.Passive, nets map[string]*core.Net) (*Result, error) {
	var out strings.Builder
	var skipped []string

	writeLine(&out, "G90")
	writeLine(&out, fmt.Sprintf("G0 Z%s", fm(e.cfg.PassiveZ)))

	sortedComponents := make([]*core.Passive, len(components))
	copy(sortedComponents, components)
	sort.Slice(sortedComponents, func(i, j int) bool { return sortedComponents[i].Name < sortedComponents[j].Name })

	instanceCount := make(map[string]int)
	for _, comp := range sortedComponents {
		if !comp.Placed {
			return nil, fmt.Errorf("gcode: component %q is not placed", comp.Name)
		}
		family := ComponentFamilyKey(comp.Name)
		slot, ok := e.tray.Slots[family]
		if !ok {
			skipped = append(skipped, comp.Name)
			continue
		}
		instanceCount[family]++
		pickupX, pickupY := slotCenter(e.cfg, slot, instanceCount[family])

		pins := comp.Pins()
		placeX, placeY := e.centroid(pins[:])

		e.writeCycle(&out, pickupX, pickupY, placeX, placeY)
	}

	netNames := make([]string, 0, len(nets))
	for name := range nets {
		netNames = append(netNames, name)
	}
	sort.Strings(netNames)

	for _, name := range netNames {
		for _, segPath := range nets[name].SegPaths {
			manhattanLength := len(segPath) - 1
			family := WireFamilyKey(manhattanLength)
			slot, ok := e.tray.Slots[family]
			if !ok {
				skipped = append(skipped, fmt.Sprintf("wire(%s)", family))
				continue
			}
			e.wireSlot[family]++
			pickupX, pickupY := slotCenter(e.cfg, slot, e.wireSlot[family])

			endpoints := []core.Hole{segPath[0], segPath[len(segPath)-1]}
			placeX, placeY := e.centroid(endpoints)

			e.writeCycle(&out, pickupX, pickupY, placeX, placeY)
		}
	}

	return &Result{Program: out.String(), SkippedParts: skipped}, nil
}

// centroid returns the mean board-local (x, y) of holes.
func (e *Emitter) centroid(holes []core.Hole) (x, y float64) {
	var sx, sy float64
	for _, h := range holes {
		sx += e.cfg.ColumnToX(h.Col)
		sy += e.cfg.RowToY(float64(h.Row))
	}
	n := float64(len(holes))
	return sx / n, sy / n
}

// writeCycle emits one motion block: pick up at board-local (pickupX,
// pickupY) in tray space, then place at board-local (placeX, placeY) on
// the breadboard, each leg travelling via TravelApproachZ and bracketed
// by the matching vacuum command.
func (e *Emitter) writeCycle(out *strings.Builder, pickupX, pickupY, placeX, placeY float64) {
	writeLine(out, "G90")

	bx, by := e.cfg.PickupBed(pickupX, pickupY)
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.TravelApproachZ)))
	writeLine(out, fmt.Sprintf("G0 F6000 X%s Y%s", fm(bx), fm(by)))
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.PickupZ)))
	writeLine(out, "VACUUM_ON")
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.PassiveZ)))

	px, py := e.cfg.PlacementBed(placeX, placeY)
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.TravelApproachZ)))
	writeLine(out, fmt.Sprintf("G0 F6000 X%s Y%s", fm(px), fm(py)))
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.PlaceZ)))
	writeLine(out, "VACUUM_OFF")
	writeLine(out, fmt.Sprintf("G0 Z%s", fm(e.cfg.PassiveZ)))
}

func writeLine(out *strings.Builder, line string) {
	out.WriteString(line)
	out.WriteByte('\n')
}

// fm formats a coordinate to 3 decimal places, per the source spec's
// numeric output rule.
func fm(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
