package stats

import "errors"

// ErrEmptySample is returned by Bootstrap when called with a zero-length
// sample. Callers that want a -1-filled sentinel instead of an error
// should use BootstrapOrSentinel.
var ErrEmptySample = errors.New("stats: empty sample")
