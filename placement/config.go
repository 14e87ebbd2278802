package placement

// Config parametrizes the placement search's forward-check and fan-out
// bounds (source spec §6 configuration knobs).
type Config struct {
	// MaxSegments bounds how many jumper hops the forward check's
	// reachability test may use when estimating whether a pin can still
	// reach its net's existing targets. Default 3.
	MaxSegments int

	// TopKCandidates caps how many scored candidates are tried per
	// component at each DFS depth. Default range is 40-80; this module
	// defaults to 60.
	TopKCandidates int
}

// DefaultConfig returns MaxSegments=3, TopKCandidates=60.
func DefaultConfig() Config {
	return Config{MaxSegments: 3, TopKCandidates: 60}
}
