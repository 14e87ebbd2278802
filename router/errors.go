package router

import "errors"

// ErrRouteExhausted indicates a specific net could not be wired given the
// current placement. The placement search treats this as "try the next
// candidate"; only an exhaustion at the DFS root surfaces it to the
// caller (per the source spec's propagation policy).
var ErrRouteExhausted = errors.New("router: route exhausted")
