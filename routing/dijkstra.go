package routing

import (
	"container/heap"

	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// pqItem is one entry in the strict fewest-jumpers priority queue,
// ordered by the lexicographic key (jumperCount, distance).
type pqItem struct {
	key         string
	distance    float64
	jumperCount int
	nodeCount   int
	exclusion   []int
	index       int
}

// priorityQueue is a container/heap min-heap over pqItem.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].jumperCount != pq[j].jumperCount {
		return pq[i].jumperCount < pq[j].jumperCount
	}
	return pq[i].distance < pq[j].distance
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// runLeastJumpersDijkstra relaxes the fewest-jumpers tree with a strict
// priority queue ordered by (jumper_count, distance) instead of FIFO
// insertion order. Unlike the FIFO pass, a vertex's first pop is already
// optimal under the lexicographic key, so no re-improvement after a pop
// is possible; the exclusion-list discipline (skip a jumper back into an
// already-crossed part) is unchanged.
func runLeastJumpersDijkstra(g *wiregraph.Graph, seeds []seed, sinkPartID int) map[string]bool {
	pq := make(priorityQueue, 0, len(seeds))
	heap.Init(&pq)
	for _, s := range seeds {
		heap.Push(&pq, &pqItem{key: s.key, distance: s.distance, jumperCount: 0, nodeCount: 1, exclusion: []int{sinkPartID}})
	}

	reachable := make(map[string]bool)
	settled := make(map[string]bool)

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*pqItem)
		if settled[cur.key] {
			continue
		}
		settled[cur.key] = true
		reachable[cur.key] = true

		spawned := false
		neighborKeys, neighbors := sortedNeighbors(g, cur.key)
		for _, neighborKey := range neighborKeys {
			n := neighbors[neighborKey]
			if settled[neighborKey] {
				continue
			}
			neighbor, ok := g.Vertex(neighborKey)
			if !ok {
				continue
			}
			if n.Kind == wiregraph.KindJumper && containsInt(cur.exclusion, neighbor.PartID) {
				continue
			}

			newDistance := n.Length + cur.distance
			newJumperCount := cur.jumperCount
			newExclusion := cur.exclusion
			if n.Kind == wiregraph.KindJumper {
				newJumperCount++
				newExclusion = append(append([]int{}, cur.exclusion...), neighbor.PartID)
			}

			if neighbor.RouteLeastJumpers.Valid {
				better := newJumperCount < neighbor.RouteLeastJumpers.JumperCount ||
					(newJumperCount == neighbor.RouteLeastJumpers.JumperCount && newDistance < neighbor.RouteLeastJumpers.Distance)
				if !better {
					continue
				}
			}

			newNodeCount := cur.nodeCount + 1
			g.SetRouteLeastJumpers(neighborKey, wiregraph.RouteRecord{
				Valid: true, JumperCount: newJumperCount, Distance: newDistance,
				NodeCount: newNodeCount, ExclusionPartIDs: newExclusion, Previous: cur.key,
			})
			g.IncrementOutgoingBranchesLeastJumpers(cur.key)
			heap.Push(&pq, &pqItem{key: neighborKey, distance: newDistance, jumperCount: newJumperCount, nodeCount: newNodeCount, exclusion: newExclusion})
			spawned = true
		}
		if !spawned {
			g.MarkLeastJumpersLeaf(cur.key, true)
		}
	}
	return reachable
}
