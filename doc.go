// Package breadboardpnr is a place-and-route engine for SPICE-subset
// netlists targeting a solderless breadboard.
//
// A Solve call (see the solve package) takes netlist text and produces a
// fully placed, routed, short-free layout: every passive component
// assigned a collinear hole body, every net wired with jumpers of
// permitted Manhattan lengths, and (optionally) a pick-and-place G-code
// program and a diagnostic PNG render of the result.
//
// The module is organized as a short pipeline of independently testable
// packages:
//
//	netlist/    — NT: parses the SPICE subset, compacts node names, emits components
//	board/      — BM: the breadboard's fixed hole geometry and mutable occupancy
//	unionfind/  — generic disjoint-set, used to track electrical equivalence
//	placement/  — PS: backtracking search over component placements
//	router/     — RT: per-net jumper routing (straight jumper first, then BFS)
//	shorts/     — SC: post-route detection of accidental net collisions
//	gcode/      — GE: deterministic pick-and-place program emission
//	render/     — RN: optional diagnostic PNG rendering
//	solve/      — wires the above into the single typed Solve result
//	cmd/pnrtool — CLI entry point
package breadboardpnr
