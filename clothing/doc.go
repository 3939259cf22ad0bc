// Package clothing models the static, read-only description of a garment:
// its parts (cutout outlines with named segments) and the joints that seam
// pairs of parts together along those segments.
//
// This is deliberately a pure read model: an experiment never edits a
// garment once its configuration is chosen, so there is no mutation API.
// Segment storage keeps the [start_index, end_index] pair-into-outline
// representation (including its wrap-around convention when start > end)
// rather than materializing a polyline eagerly; package garment builds
// the polyline lazily from a part's scaled outline when projection is
// needed.
package clothing
