package netlist

import "errors"

// Sentinel errors for netlist translation failures (§7 of the source
// spec). Each is returned bare or wrapped with fmt.Errorf("%w: ...", ...)
// to carry the offending line or token.
var (
	// ErrParse indicates the input text could not be tokenized: the input
	// is blank, a .model line has fewer than three tokens, or a line's
	// leading token is neither a recognized ref nor a known directive.
	ErrParse = errors.New("netlist: parse error")

	// ErrMalformedComponent indicates a component line has fewer than
	// the two required node tokens.
	ErrMalformedComponent = errors.New("netlist: malformed component line")

	// ErrMissingSupply indicates a component references the V+ net but
	// no voltage source with a grounded negative terminal was found.
	ErrMissingSupply = errors.New("netlist: missing supply")
)
