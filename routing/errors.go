package routing

import "errors"

// ErrNoInteriorEdges is returned when the sink's part has no interior
// edges to seed the routing trees from.
var ErrNoInteriorEdges = errors.New("routing: sink part has no interior edges")

// ErrReachabilityMismatch means the shortest-wire tree and the
// fewest-jumpers tree disagree on which vertices are reachable. Both
// trees walk the same edges, so this never holds on a well-formed graph;
// Run logs it rather than failing.
var ErrReachabilityMismatch = errors.New("routing: reachable vertex sets differ between trees")
