package tessellate

import "github.com/krisjanis-nesenbergs/garmentwire/geom"

// Result is the output of one Generate call: the interior edge grid, the
// distinct interior vertices visited, and the boundary-clip points where
// the tiling was truncated by the bounds.
type Result struct {
	Algorithm string

	// Network maps an edge hash to the interior segment it represents.
	Network map[string]geom.Segment

	// Points maps a vertex hash to the interior vertex point it represents.
	Points map[string]geom.Point

	// EdgePoints maps a vertex hash to a boundary-clip point: a vertex
	// created where a tiling edge was truncated by the outline.
	EdgePoints map[string]geom.Point

	// Exhausted is true when the iteration budget ran out before the
	// recursion naturally terminated; the result is then a partial,
	// non-fatal best-effort grid.
	Exhausted bool
}

// GridLength returns the sum of the lengths of every interior edge.
func (r *Result) GridLength() float64 {
	var total float64
	for _, seg := range r.Network {
		total += seg.Length()
	}
	return total
}

// VertexCount returns the number of distinct interior vertices recorded.
func (r *Result) VertexCount() int {
	return len(r.Points)
}

// EdgePointList flattens EdgePoints into a slice, discarding hash keys.
func (r *Result) EdgePointList() []geom.Point {
	out := make([]geom.Point, 0, len(r.EdgePoints))
	for _, p := range r.EdgePoints {
		out = append(out, p)
	}
	return out
}

// EdgeList flattens Network into a slice, discarding hash keys.
func (r *Result) EdgeList() []geom.Segment {
	out := make([]geom.Segment, 0, len(r.Network))
	for _, s := range r.Network {
		out = append(out, s)
	}
	return out
}
