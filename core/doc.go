// Package core defines the shared value types that flow between every
// other package in this module: hole coordinates, polarity, component
// ("Passive") descriptions, and electrical nets.
//
// This package plays the same role lvlath/core plays for the graph
// library it was adapted from — the single place that owns the central
// domain types so that board, netlist, placement, router, shorts, and
// gcode can all depend on one small, dependency-free vocabulary instead
// of on each other. Unlike lvlath/core, there is no generic Graph here:
// the breadboard's connectivity is tracked by board.Breadboard (strips,
// rails) plus unionfind.UF (derived electrical equivalence), not by an
// adjacency-list graph, so the concurrency-safe multigraph machinery the
// teacher package carries has no job to do in this domain and was left
// out rather than carried along unused.
package core
