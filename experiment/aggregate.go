package experiment

import (
	"github.com/krisjanis-nesenbergs/garmentwire/garment"
	"github.com/krisjanis-nesenbergs/garmentwire/routing"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// visitedTracker accumulates, across one sink's destination samples, which
// vertices and jumpers a tree's returned paths actually walked over. The
// visited-fraction family of per-sink statistics measures how much of the
// installed network a sink's sensor population actually uses, rather than
// how much the tree merely reaches.
type visitedTracker struct {
	nodes   map[string]bool
	jumpers map[string]bool
}

func newVisitedTracker() *visitedTracker {
	return &visitedTracker{nodes: make(map[string]bool), jumpers: make(map[string]bool)}
}

// canonicalPair orders a/b ascending, mirroring wiregraph's own jumper
// pair key so a jumper is counted as visited the same way regardless of
// which endpoint a path happened to cross it from.
func canonicalPair(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "~" + b
}

func routeOf(v *wiregraph.VertexRecord, least bool) wiregraph.RouteRecord {
	if least {
		return v.RouteLeastJumpers
	}
	return v.RouteShortest
}

// markPath walks key's tree path back to its seed, marking every node and
// jumper edge along the way. It stops early at the first already-marked
// node: an earlier sample already recorded everything further toward the
// root.
func (t *visitedTracker) markPath(g *wiregraph.Graph, key string, least bool) {
	cur := key
	for cur != "" {
		if t.nodes[cur] {
			return
		}
		t.nodes[cur] = true
		v, ok := g.Vertex(cur)
		if !ok {
			return
		}
		rec := routeOf(v, least)
		if rec.Previous != "" {
			if n, ok := g.Neighbors(cur)[rec.Previous]; ok && n.Kind == wiregraph.KindJumper {
				t.jumpers[canonicalPair(cur, rec.Previous)] = true
			}
		}
		cur = rec.Previous
	}
}

// walkNovel returns the wire length a sensor sample newly traverses: the
// chosen vertex's stored tree distance, minus the stored distance of the
// first ancestor some earlier sample already walked over. A chosen vertex
// that was itself already visited contributes nothing. The tree's
// distance monotonicity turns the whole walk into one subtraction instead
// of a re-summation of edge lengths.
func walkNovel(g *wiregraph.Graph, tracker *visitedTracker, key string, least bool) float64 {
	if tracker.nodes[key] {
		return 0
	}
	v, ok := g.Vertex(key)
	if !ok {
		return 0
	}
	startRec := routeOf(v, least)

	cur := key
	curRec := startRec
	for {
		if curRec.Previous == "" {
			return startRec.Distance
		}
		cur = curRec.Previous
		vv, ok := g.Vertex(cur)
		if !ok {
			return startRec.Distance
		}
		curRec = routeOf(vv, least)
		if tracker.nodes[cur] {
			return startRec.Distance - curRec.Distance
		}
	}
}

// endpointChoice is the tree-distance evaluation of one candidate vertex
// a sensor might reach through.
type endpointChoice struct {
	key         string
	totalLength float64
	jumperCount int
	nodeCount   int
	valid       bool
}

func evalEndpoint(v *wiregraph.VertexRecord, d float64, least bool) endpointChoice {
	rec := routeOf(v, least)
	if !rec.Valid {
		return endpointChoice{}
	}
	return endpointChoice{
		key: v.Key, valid: true,
		totalLength: rec.Distance + d,
		jumperCount: rec.JumperCount, nodeCount: rec.NodeCount,
	}
}

// pickEndpoint chooses whichever of a sensor's bracketing edge endpoints
// gives the shorter total wire path for the given tree: a sensor location
// does not itself belong to the graph, so it always reaches a tree
// through one of the two vertices of its closest interior edge. distA and
// distB already include the sensor-to-edge stub.
func pickEndpoint(g *wiregraph.Graph, keyA, keyB string, distA, distB float64, least bool) endpointChoice {
	var a, b endpointChoice
	if va, ok := g.Vertex(keyA); ok {
		a = evalEndpoint(va, distA, least)
	}
	if vb, ok := g.Vertex(keyB); ok {
		b = evalEndpoint(vb, distB, least)
	}
	switch {
	case !a.valid && !b.valid:
		return endpointChoice{}
	case !a.valid:
		return b
	case !b.valid:
		return a
	case b.totalLength < a.totalLength:
		return b
	default:
		return a
	}
}

// sampleSensor draws one random sensor location and evaluates it against
// both already-converged routing trees for the current sink, crediting
// its novel-length contribution through the two trackers. A sensor whose
// closest interior edge is farther away than the joint radius cannot be
// stitched onto the grid at all and is marked unreachable-due-to-short-
// jumper for both trees.
func sampleSensor(g *wiregraph.Graph, gar *garment.Garment, sourceID, destinationID int, jointRadius float64, shortestTracker, leastJumpersTracker *visitedTracker) SensorRecord {
	rec := SensorRecord{SourceID: sourceID, DestinationID: destinationID}

	partID, point := gar.RandomPoint()
	edge, dist, projection, err := routing.ClosestEdgeProjection(g, partID, point)
	if err != nil {
		return rec
	}
	if dist > jointRadius {
		rec.UnreachableShortJumperShortest = true
		rec.UnreachableShortJumperLeastJumpers = true
		return rec
	}
	distA := edge.PointA.Distance(projection) + dist
	distB := edge.PointB.Distance(projection) + dist

	if shortest := pickEndpoint(g, edge.KeyA, edge.KeyB, distA, distB, false); shortest.valid {
		rec.ReachableShortest = true
		rec.TotalLengthShortest = shortest.totalLength
		rec.StubLengthShortest = dist
		rec.JumperCountShortest = shortest.jumperCount
		rec.NodeCountShortest = shortest.nodeCount
		rec.NovelLengthShortest = walkNovel(g, shortestTracker, shortest.key, false)
		shortestTracker.markPath(g, shortest.key, false)
	}

	if leastJ := pickEndpoint(g, edge.KeyA, edge.KeyB, distA, distB, true); leastJ.valid {
		rec.ReachableLeastJumpers = true
		rec.TotalLengthLeastJumpers = leastJ.totalLength
		rec.StubLengthLeastJumpers = dist
		rec.JumperCountLeastJumpers = leastJ.jumperCount
		rec.NodeCountLeastJumpers = leastJ.nodeCount
		rec.NovelLengthLeastJumpers = walkNovel(g, leastJumpersTracker, leastJ.key, true)
		leastJumpersTracker.markPath(g, leastJ.key, true)
	}

	return rec
}

func maxFloat(xs []float64) float64 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func avgFloat(xs []float64) float64 {
	var sum float64
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// depthStats computes the max/avg-over-leaves metrics of TreeDepthStats
// for one tree across every vertex the tree reached.
func depthStats(g *wiregraph.Graph, keys []string, least bool) TreeDepthStats {
	var lengths, nodes, jumpers []float64
	for _, k := range keys {
		v, ok := g.Vertex(k)
		if !ok {
			continue
		}
		rec := routeOf(v, least)
		if !rec.Valid || !rec.IsLeaf {
			continue
		}
		lengths = append(lengths, rec.Distance)
		nodes = append(nodes, float64(rec.NodeCount))
		jumpers = append(jumpers, float64(rec.JumperCount))
	}
	if len(lengths) == 0 {
		return TreeDepthStats{}
	}
	return TreeDepthStats{
		MaxLength: maxFloat(lengths), AvgLength: avgFloat(lengths),
		MaxNodes: maxFloat(nodes), AvgNodes: avgFloat(nodes),
		MaxJumpers: maxFloat(jumpers), AvgJumpers: avgFloat(jumpers),
	}
}

// multirouteStats reports which share of a tree's visited nodes fanned
// out into two or more downstream routes, plus the max and average
// branch count over exactly those nodes. All three collapse to the -1
// sentinel when the sink's sensor population visited nothing at all; when
// it visited nodes but none of them branch, the fraction is 0 and the
// max and average are -1.
func multirouteStats(g *wiregraph.Graph, tracker *visitedTracker, least bool) (fraction, branchMax, branchAvg float64) {
	if len(tracker.nodes) == 0 {
		return -1, -1, -1
	}
	var branches []float64
	for key := range tracker.nodes {
		v, ok := g.Vertex(key)
		if !ok {
			continue
		}
		rec := routeOf(v, least)
		if rec.Valid && rec.OutgoingBranches > 1 {
			branches = append(branches, float64(rec.OutgoingBranches))
		}
	}
	fraction = float64(len(branches)) / float64(len(tracker.nodes))
	if len(branches) == 0 {
		return fraction, -1, -1
	}
	return fraction, maxFloat(branches), avgFloat(branches)
}

// computeSinkRecord assembles one per-sink accounting row for the current
// sink once both trees have converged and every destination sample has
// run, partitioning the graph's nodes, wire length and jumpers into the
// reachable/unreachable halves the shortest-wire tree actually covers.
func computeSinkRecord(g *wiregraph.Graph, sourceID int, shortestTracker, leastJumpersTracker *visitedTracker) SinkRecord {
	keys := g.VertexKeys()

	reachableShortest := make(map[string]bool)
	for _, k := range keys {
		v, ok := g.Vertex(k)
		if !ok {
			continue
		}
		if v.RouteShortest.Valid {
			reachableShortest[k] = true
		}
	}

	rec := SinkRecord{SourceID: sourceID}
	rec.ReachableNodes = len(reachableShortest)
	rec.UnreachableNodes = len(keys) - len(reachableShortest)

	for _, e := range g.AllInteriorEdges() {
		if reachableShortest[e.KeyA] && reachableShortest[e.KeyB] {
			rec.ReachableWireLength += e.Length
		} else {
			rec.UnreachableWireLength += e.Length
		}
	}

	allJumpers := g.Jumpers()
	var jumperLenTotal, jumperLenVisitedShortest, jumperLenVisitedLeast float64
	for _, j := range allJumpers {
		jumperLenTotal += j.Length
		if reachableShortest[j.EndpointA] && reachableShortest[j.EndpointB] {
			rec.ReachableJumperLength += j.Length
			rec.ReachableJumperCount++
		} else {
			rec.UnreachableJumperLength += j.Length
			rec.UnreachableJumperCount++
		}
		pair := canonicalPair(j.EndpointA, j.EndpointB)
		if shortestTracker.jumpers[pair] {
			jumperLenVisitedShortest += j.Length
		}
		if leastJumpersTracker.jumpers[pair] {
			jumperLenVisitedLeast += j.Length
		}
	}

	rec.ShortestDepth = depthStats(g, keys, false)
	rec.LeastJumpersDepth = depthStats(g, keys, true)

	// Visited fractions are taken against the whole installed network,
	// not just the reachable half: an unreachable node is exactly as
	// wasted as a reachable-but-never-used one.
	if len(keys) > 0 {
		rec.FractionNodesVisitedShortest = float64(len(shortestTracker.nodes)) / float64(len(keys))
		rec.FractionNodesVisitedLeastJumpers = float64(len(leastJumpersTracker.nodes)) / float64(len(keys))
	}

	if len(allJumpers) > 0 {
		rec.FractionJumpersVisitedShortest = float64(len(shortestTracker.jumpers)) / float64(len(allJumpers))
		rec.FractionJumpersVisitedLeastJumpers = float64(len(leastJumpersTracker.jumpers)) / float64(len(allJumpers))
	} else {
		rec.FractionJumpersVisitedShortest = -1
		rec.FractionJumpersVisitedLeastJumpers = -1
	}
	if jumperLenTotal > 0 {
		rec.FractionJumperLengthVisitedShortest = jumperLenVisitedShortest / jumperLenTotal
		rec.FractionJumperLengthVisitedLeastJumpers = jumperLenVisitedLeast / jumperLenTotal
	} else {
		rec.FractionJumperLengthVisitedShortest = -1
		rec.FractionJumperLengthVisitedLeastJumpers = -1
	}

	rec.FractionMultiRouteShortest, rec.NodeBranchesMaxShortest, rec.NodeBranchesAvgShortest =
		multirouteStats(g, shortestTracker, false)
	rec.FractionMultiRouteLeastJumpers, rec.NodeBranchesMaxLeastJumpers, rec.NodeBranchesAvgLeastJumpers =
		multirouteStats(g, leastJumpersTracker, true)

	return rec
}
