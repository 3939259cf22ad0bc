package routing

import (
	"fmt"
	"log"
	"sort"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// Result reports, for one Run, which vertices each tree reached.
type Result struct {
	ReachableShortest     map[string]bool
	ReachableLeastJumpers map[string]bool
}

// seed is one endpoint of the sink's closest interior edge.
type seed struct {
	key      string
	distance float64
}

// ClosestEdgeProjection finds the interior edge of partID closest to
// point, along with the distance to it and point's projection onto it;
// Run and the per-sensor evaluation loop both seed from these. Returns
// ErrNoInteriorEdges if partID has no interior edges at all.
func ClosestEdgeProjection(g *wiregraph.Graph, partID int, point geom.Point) (edge wiregraph.PartEdge, distance float64, projection geom.Point, err error) {
	edges := g.PartInteriorEdges(partID)
	if len(edges) == 0 {
		return wiregraph.PartEdge{}, 0, geom.Point{}, fmt.Errorf("%w: part %d", ErrNoInteriorEdges, partID)
	}

	closest := edges[0]
	closestSeg := geom.Segment{A: closest.PointA, B: closest.PointB}
	minDist := closestSeg.DistanceToPoint(point)
	for _, e := range edges[1:] {
		seg := geom.Segment{A: e.PointA, B: e.PointB}
		if d := seg.DistanceToPoint(point); d < minDist {
			minDist = d
			closest = e
			closestSeg = seg
		}
	}

	projection = closestSeg.Interpolate(closestSeg.Project(point))
	return closest, minDist, projection, nil
}

// Run seeds both the shortest-wire and fewest-jumpers trees from the
// interior edge of sinkPartID closest to sinkPoint, then relaxes both
// across g until their respective queues drain. g.ResetRoutes is called
// first so a prior sink sample's records never leak into this one.
func Run(g *wiregraph.Graph, sinkPartID int, sinkPoint geom.Point, opts ...Option) (*Result, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.ResetRoutes()

	closest, _, projection, err := ClosestEdgeProjection(g, sinkPartID, sinkPoint)
	if err != nil {
		return nil, err
	}
	distToProjection := sinkPoint.Distance(projection)

	seeds := []seed{
		{key: closest.KeyA, distance: closest.PointA.Distance(projection) + distToProjection},
		{key: closest.KeyB, distance: closest.PointB.Distance(projection) + distToProjection},
	}

	for _, s := range seeds {
		rec := wiregraph.RouteRecord{Valid: true, JumperCount: 0, Distance: s.distance, NodeCount: 1}
		g.SetRouteShortest(s.key, rec)

		ljRec := rec
		ljRec.ExclusionPartIDs = []int{sinkPartID}
		g.SetRouteLeastJumpers(s.key, ljRec)
	}

	reachShortest := runShortestFIFO(g, seeds)

	var reachLeast map[string]bool
	if cfg.strictFewestJumpers {
		reachLeast = runLeastJumpersDijkstra(g, seeds, sinkPartID)
	} else {
		reachLeast = runLeastJumpersFIFO(g, seeds, sinkPartID)
	}

	if len(reachShortest) != len(reachLeast) {
		log.Printf("routing: %v: shortest=%d least_jumpers=%d", ErrReachabilityMismatch, len(reachShortest), len(reachLeast))
	}

	return &Result{ReachableShortest: reachShortest, ReachableLeastJumpers: reachLeast}, nil
}

// sortedNeighbors returns key's adjacency as a key-sorted list, so that
// relaxation tie-breaking does not depend on map iteration order and two
// identical runs produce identical trees.
func sortedNeighbors(g *wiregraph.Graph, key string) ([]string, map[string]wiregraph.Neighbor) {
	neighbors := g.Neighbors(key)
	keys := make([]string, 0, len(neighbors))
	for k := range neighbors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, neighbors
}

// runShortestFIFO relaxes the unrestricted shortest-wire tree via FIFO
// Bellman-Ford-style relaxation.
func runShortestFIFO(g *wiregraph.Graph, seeds []seed) map[string]bool {
	type item struct {
		key         string
		distance    float64
		jumperCount int
		nodeCount   int
	}

	queue := make([]item, 0, len(seeds))
	for _, s := range seeds {
		queue = append(queue, item{key: s.key, distance: s.distance, jumperCount: 0, nodeCount: 1})
	}

	reachable := make(map[string]bool)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reachable[cur.key] = true

		spawned := false
		neighborKeys, neighbors := sortedNeighbors(g, cur.key)
		for _, neighborKey := range neighborKeys {
			n := neighbors[neighborKey]
			newDistance := n.Length + cur.distance
			neighbor, ok := g.Vertex(neighborKey)
			if !ok {
				continue
			}
			if neighbor.RouteShortest.Valid && newDistance >= neighbor.RouteShortest.Distance {
				continue
			}

			newJumperCount := cur.jumperCount
			if n.Kind == wiregraph.KindJumper {
				newJumperCount++
			}
			newNodeCount := cur.nodeCount + 1

			g.SetRouteShortest(neighborKey, wiregraph.RouteRecord{
				Valid: true, JumperCount: newJumperCount, Distance: newDistance,
				NodeCount: newNodeCount, Previous: cur.key,
			})
			g.IncrementOutgoingBranchesShortest(cur.key)
			queue = append(queue, item{key: neighborKey, distance: newDistance, jumperCount: newJumperCount, nodeCount: newNodeCount})
			spawned = true
		}
		if !spawned {
			g.MarkShortestLeaf(cur.key, true)
		}
	}
	return reachable
}

// runLeastJumpersFIFO relaxes the fewest-jumpers tree via the same FIFO
// discipline, honouring the copy-on-grow exclusion list: a jumper whose
// target part is already in the traversing path's exclusion list is
// skipped (it would jump straight back across the seam it just crossed).
func runLeastJumpersFIFO(g *wiregraph.Graph, seeds []seed, sinkPartID int) map[string]bool {
	type item struct {
		key         string
		distance    float64
		jumperCount int
		nodeCount   int
		exclusion   []int
	}

	queue := make([]item, 0, len(seeds))
	for _, s := range seeds {
		queue = append(queue, item{key: s.key, distance: s.distance, jumperCount: 0, nodeCount: 1, exclusion: []int{sinkPartID}})
	}

	reachable := make(map[string]bool)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reachable[cur.key] = true

		spawned := false
		neighborKeys, neighbors := sortedNeighbors(g, cur.key)
		for _, neighborKey := range neighborKeys {
			n := neighbors[neighborKey]
			neighbor, ok := g.Vertex(neighborKey)
			if !ok {
				continue
			}
			if n.Kind == wiregraph.KindJumper && containsInt(cur.exclusion, neighbor.PartID) {
				continue
			}

			newDistance := n.Length + cur.distance
			if neighbor.RouteLeastJumpers.Valid && newDistance >= neighbor.RouteLeastJumpers.Distance {
				continue
			}

			newJumperCount := cur.jumperCount
			newExclusion := cur.exclusion
			if n.Kind == wiregraph.KindJumper {
				newJumperCount++
				newExclusion = append(append([]int{}, cur.exclusion...), neighbor.PartID)
			}
			newNodeCount := cur.nodeCount + 1

			g.SetRouteLeastJumpers(neighborKey, wiregraph.RouteRecord{
				Valid: true, JumperCount: newJumperCount, Distance: newDistance,
				NodeCount: newNodeCount, ExclusionPartIDs: newExclusion, Previous: cur.key,
			})
			g.IncrementOutgoingBranchesLeastJumpers(cur.key)
			queue = append(queue, item{key: neighborKey, distance: newDistance, jumperCount: newJumperCount, nodeCount: newNodeCount, exclusion: newExclusion})
			spawned = true
		}
		if !spawned {
			g.MarkLeastJumpersLeaf(cur.key, true)
		}
	}
	return reachable
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
