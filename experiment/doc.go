// Package experiment orchestrates one full Monte-Carlo evaluation of a
// candidate wiring topology: tessellate every part, synthesize jumpers,
// then repeatedly sample a sink location and a population of sensor
// locations, routing each through the shortest-wire and fewest-jumpers
// trees and aggregating the results into bootstrap-backed statistics.
//
// One Run owns its garment, tessellations, graph and trial matrices for
// its whole lifetime and shares nothing; a driver that wants parallelism
// runs independent experiments on independent goroutines or processes.
package experiment
