// Package tessellate generates a candidate conductive-trace grid over a
// part's outline by recursively walking one of the Archimedean (or
// semi-Archimedean) tilings from a seed point, clipping every candidate
// edge against the outline boundary.
//
// The traversal is depth-first over the implicit infinite tiling, guarded
// by a visited-vertex set and an optional iteration budget: each vertex
// emits one candidate edge per configured interior angle, truncating at
// the boundary ring and recording the truncation point as an edge-point.
package tessellate
