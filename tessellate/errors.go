package tessellate

import "errors"

// ErrUnknownAlgorithm is returned when Algorithm does not name one of the
// catalogued tilings.
var ErrUnknownAlgorithm = errors.New("tessellate: unknown algorithm")

// ErrInvalidGeometry is returned when the bounds are missing together with
// an iteration cap, enclose zero area, or the seed point lies outside the
// bounds.
var ErrInvalidGeometry = errors.New("tessellate: invalid geometry")

// ErrExceededIterations is not returned as an error from Generate (a
// depleted iteration budget yields a non-fatal, partial result); it is
// exposed as a field on Result instead. It is defined here so callers
// that want to treat it as an error can wrap it explicitly.
var ErrExceededIterations = errors.New("tessellate: iteration budget exhausted before recursion converged")
