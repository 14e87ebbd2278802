// Package solve orchestrates one full place-and-route solve: translate a
// netlist, build the board, search for a routable placement, and
// optionally emit G-code and/or a diagnostic render — wiring the
// independently-testable netlist, board, placement, router, shorts,
// gcode, and render packages into the single typed result the source
// spec's §6 "Solve result" calls for.
//
// The composition of placement.Search's Validator callback out of
// router.RouteAll and shorts.Check lives here rather than inside the
// placement package itself, so that placement never imports router's
// full routing or shorts at all (only router.Reachable, for its own
// narrower forward-check estimate) — the same caller-composes-the-
// callback shape lvlath/builder uses to keep its Grid constructor
// decoupled from the algorithms its callers run over the result.
package solve

import (
	"errors"
	"fmt"

	"breadboardpnr/board"
	"breadboardpnr/core"
	"breadboardpnr/gcode"
	"breadboardpnr/netlist"
	"breadboardpnr/placement"
	"breadboardpnr/render"
	"breadboardpnr/router"
	"breadboardpnr/shorts"
)

// Config bundles every sub-package's configuration knob the source spec
// lists under "Configuration knobs" (§6) into one entry point.
type Config struct {
	Board     board.Config
	Netlist   netlist.Config
	Placement placement.Config

	// EmitGcode and EmitRender toggle the optional output stages; a
	// caller that only wants to validate a netlist can solve without
	// either.
	EmitGcode  bool
	Gcode      gcode.Config
	Tray       gcode.PickupTrayLayout
	EmitRender bool
	Render     render.Config
}

// DefaultConfig wires together every sub-package's own DefaultConfig,
// with both optional output stages enabled.
func DefaultConfig() Config {
	return Config{
		Board:      board.DefaultConfig(),
		Netlist:    netlist.DefaultConfig(),
		Placement:  placement.DefaultConfig(),
		EmitGcode:  true,
		Gcode:      gcode.DefaultConfig(),
		Tray:       gcode.DefaultPickupTrayLayout(),
		EmitRender: true,
		Render:     render.DefaultConfig(),
	}
}

// ComponentResult is one entry of the solve result's component map: the
// placed component's anchor, full body, two pins, and bound net names.
type ComponentResult struct {
	Anchor core.Hole
	Body   []core.Hole
	Pins   [2]core.Hole
	Nets   [2]string
}

// WireResult is one entry of the solve result's wire list: a committed
// jumper segment and the net it realizes.
type WireResult struct {
	Net   string
	Holes []core.Hole
}

// Result is the solve's single typed outcome, per the source spec's §6
// "Solve result" and §7 "single typed result {ok | error-kind,
// message}". OK is true only when every component placed and routed
// without a short; Err carries one of this package's sentinel errors
// (wrapped with detail) otherwise, and the remaining fields are the zero
// value.
type Result struct {
	OK         bool
	Err        error
	Components map[string]ComponentResult
	Wires      []WireResult
	Gcode      *gcode.Result
	Render     *render.Result

	Board *board.Breadboard
	Nets  map[string]*core.Net
}

// Solve runs the full pipeline described in the package doc over netlistText
// using cfg, returning a single Result. A missing supply and placement
// exhaustion are reported via Result.Err (wrapping ErrMissingSupply or
// ErrPlacementExhausted) with a nil second return value; other netlist
// translation errors (ParseError, MalformedComponent) are returned as the
// second return value with a nil Result.
func Solve(netlistText string, cfg Config) (*Result, error) {
	parsed, err := netlist.Translate(netlistText, cfg.Netlist)
	if err != nil {
		if errors.Is(err, netlist.ErrMissingSupply) {
			return &Result{OK: false, Err: fmt.Errorf("%w: %s", ErrMissingSupply, err)}, nil
		}
		return nil, err
	}

	b := board.New(cfg.Board)
	nets := parsed.Nets

	validate := func() error {
		if err := router.RouteAll(b, nets); err != nil {
			return err
		}
		return shorts.Check(b, nets)
	}

	if err := placement.Search(b, nets, parsed.Components, cfg.Placement, validate); err != nil {
		if errors.Is(err, placement.ErrPlacementExhausted) {
			return &Result{OK: false, Err: fmt.Errorf("%w: %s", ErrPlacementExhausted, err)}, nil
		}
		return nil, err
	}

	res, err := buildResult(b, nets, parsed.Components)
	if err != nil {
		return &Result{OK: false, Err: err}, nil
	}
	res.Board = b
	res.Nets = nets

	if cfg.EmitGcode {
		e := gcode.NewEmitter(cfg.Gcode, cfg.Tray)
		gres, err := e.Emit(parsed.Components, nets)
		if err != nil {
			return nil, err
		}
		res.Gcode = gres
	}

	if cfg.EmitRender {
		rres, err := render.Render(b, parsed.Components, nets, cfg.Render)
		if err != nil {
			return nil, err
		}
		res.Render = rres
	}

	return res, nil
}

// buildResult assembles the OK result's components map and wire list
// from the now-solved board and nets. A component found not Placed here
// is an invariant violation: the search must never report success
// without placing every component.
func buildResult(b *board.Breadboard, nets map[string]*core.Net, components []*core.Passive) (*Result, error) {
	out := &Result{OK: true, Components: make(map[string]ComponentResult, len(components))}

	for _, comp := range components {
		if !comp.Placed {
			return nil, fmt.Errorf("%w: component %q reported solved but is not placed", ErrInvariantViolation, comp.Name)
		}
		out.Components[comp.Name] = ComponentResult{
			Anchor: comp.Anchor,
			Body:   comp.Body,
			Pins:   comp.Pins(),
			Nets:   comp.Nets(),
		}
	}

	names := sortedNetNames(nets)
	for _, name := range names {
		for _, path := range nets[name].SegPaths {
			out.Wires = append(out.Wires, WireResult{Net: name, Holes: path})
		}
	}
	return out, nil
}
