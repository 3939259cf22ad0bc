// Package jumper synthesizes cross-seam "jumper" edges: short stitched
// contacts between an edge-point on one part and an edge-point on the
// joint-opposing part, within a configurable joint radius.
//
// Synthesize is replacement-oriented: each call first purges every
// jumper already present in the graph, so sweeping a range of joint
// radii over one tessellation only rebuilds the cross-seam edges.
package jumper
