// Package garmentwire is a Monte-Carlo evaluator for wiring topologies
// embedded in smart-garment patterns.
//
// A garment pattern is a set of flat clothing parts joined edge to edge
// along seams. garmentwire tessellates each part into a regular node
// grid, synthesizes cross-seam jumper edges wherever two parts' grid
// points land within a joint radius of each other once stitched, and
// then routes two competing spanning trees out of a randomly placed
// sink node: one minimizing total wire length, the other minimizing
// jumper crossings. Repeating this over many random sink/seed/garment
// placements and bootstrapping the per-trial metrics produces the
// confidence-interval statistics a hardware designer uses to size a
// conductive-thread layout before it is printed.
//
// The packages are organized the way the pipeline runs:
//
//	geom/       — points, segments, polygons and boundary-crossing classification
//	clothing/   — the pattern description: parts, segments, joints
//	config/     — size/sex scaling constants shared across a garment family
//	garment/    — one concrete, randomly seeded instance of a clothing item
//	tessellate/ — the thirteen named tiling node-grid generators
//	jumper/     — cross-seam edge synthesis from coincident grid points
//	wiregraph/  — the weighted, kind-tagged multigraph routing runs against
//	routing/    — the two-objective shortest-wire / fewest-jumpers routing engine
//	stats/      — the bootstrap center/CI/percentile aggregator
//	experiment/ — the Monte-Carlo driver tying every stage together
package garmentwire
