package garment

import "errors"

// ErrNoSuchSegment is returned when a point lies farther than the
// precision tolerance from every segment of a part.
var ErrNoSuchSegment = errors.New("garment: no segment found matching the point")

// ErrUnknownSize is returned when the configured size is not in the
// size/sex factor table.
var ErrUnknownSize = errors.New("garment: unknown size")
