// Package wiregraph is the weighted multigraph every tessellated part's
// interior grid and every cross-seam jumper are inserted into: a
// symmetric vertex/edge hash keyed by string vertex keys, plus the two
// mutable per-vertex route records the routing engine fills in.
//
// Vertex identity is purely key-based: a key is the owning part id plus
// both coordinates rounded to a fixed number of decimals, so two points
// that round identically are the same vertex and no epsilon comparison
// ever happens at the graph layer. The graph is always undirected and
// always weighted; its only edge distinction is interior versus jumper.
package wiregraph
