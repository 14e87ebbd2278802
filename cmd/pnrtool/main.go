// Command pnrtool solves a SPICE-subset netlist into a breadboard
// layout and writes the requested outputs.
//
// Usage:
//
//	pnrtool -netlist circuit.sp -gcode out.gcode -png out.png -json out.json
//
// Only -netlist is required; any combination of the output flags may be
// omitted to skip that artifact.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"breadboardpnr/board"
	"breadboardpnr/solve"
)

func main() {
	netlistPath := flag.String("netlist", "", "Input SPICE-subset netlist file (required)")
	gcodeOut := flag.String("gcode", "", "Write the G-code program to this file (skip if empty)")
	pngOut := flag.String("png", "", "Write a diagnostic PNG render to this file (skip if empty)")
	jsonOut := flag.String("json", "", "Write the solve result as JSON to this file (skip if empty)")
	rows := flag.Int("rows", 30, "Breadboard row count")
	maxSegments := flag.Int("max-segments", 3, "Forward-check reachability bound")
	topK := flag.Int("top-k", 60, "Candidate fan-out cap per component")
	flag.Parse()

	if *netlistPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -netlist flag is required")
		flag.Usage()
		os.Exit(1)
	}

	text, err := os.ReadFile(*netlistPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := solve.DefaultConfig()
	cfg.Board = board.Config{Rows: *rows, WL: cfg.Board.WL, WR: cfg.Board.WR, WireLengths: cfg.Board.WireLengths}
	cfg.Placement.MaxSegments = *maxSegments
	cfg.Placement.TopKCandidates = *topK
	cfg.EmitGcode = *gcodeOut != ""
	cfg.EmitRender = *pngOut != ""

	res, err := solve.Solve(string(text), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !res.OK {
		fmt.Fprintf(os.Stderr, "Solve failed: %v\n", res.Err)
		os.Exit(1)
	}

	if *gcodeOut != "" {
		if err := os.WriteFile(*gcodeOut, []byte(res.Gcode.Program), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing gcode: %v\n", err)
			os.Exit(1)
		}
		if len(res.Gcode.SkippedParts) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: skipped parts with no tray entry: %v\n", res.Gcode.SkippedParts)
		}
	}

	if *pngOut != "" {
		if err := os.WriteFile(*pngOut, res.Render.PNG, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing png: %v\n", err)
			os.Exit(1)
		}
	}

	if *jsonOut != "" {
		payload := struct {
			OK         bool                              `json:"ok"`
			Components map[string]solve.ComponentResult `json:"components"`
			Wires      []solve.WireResult                `json:"wires"`
		}{OK: res.OK, Components: res.Components, Wires: res.Wires}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling json: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing json: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Solve succeeded.")
}
