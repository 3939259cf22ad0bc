// Package routing is the two-objective shortest path engine: from one
// sink point it grows a shortest-wire tree and a fewest-jumpers tree over
// a wiregraph.Graph, writing results into each vertex's route records.
//
// The default relaxation is FIFO Bellman-Ford-style for both trees: items
// pop in insertion order, reinsertions strictly decrease the stored
// distance, and the fewest-jumpers tree keeps per-path part exclusion
// lists so a route never jumps straight back across a seam it already
// crossed. WithStrictFewestJumpers swaps the fewest-jumpers pass for a
// min-heap Dijkstra ordered by the lexicographic (jumper count, distance)
// key; CompareStrategies reports where the two disagree.
package routing
