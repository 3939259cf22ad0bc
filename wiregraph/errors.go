package wiregraph

import "errors"

// ErrDuplicateEdge is returned when a jumper is inserted for a canonical
// endpoint pair that already has one. Callers log it once and otherwise
// ignore it.
var ErrDuplicateEdge = errors.New("wiregraph: duplicate jumper edge")

// ErrVertexNotFound is returned when an operation references a vertex key
// that has not been added to the graph.
var ErrVertexNotFound = errors.New("wiregraph: vertex not found")
