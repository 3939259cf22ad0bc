package wiregraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
)

// Graph is the symmetric vertex/edge hash of one candidate wiring
// topology. It owns the vertex records, the edge adjacency, and the
// jumpers map for exactly one experiment's lifetime; nothing here is
// shared across experiments.
type Graph struct {
	mu sync.RWMutex

	precisionDecimals int

	vertices map[string]*VertexRecord
	edges    map[string]map[string]Neighbor
	jumpers  map[string]JumperRecord
}

// NewGraph creates an empty graph keying vertices at the given rounding
// precision (6 decimals is the conventional choice; passing it is the
// caller's responsibility).
func NewGraph(precisionDecimals int) *Graph {
	return &Graph{
		precisionDecimals: precisionDecimals,
		vertices:          make(map[string]*VertexRecord),
		edges:             make(map[string]map[string]Neighbor),
		jumpers:           make(map[string]JumperRecord),
	}
}

// VertexKey returns the canonical vertex key for a point owned by partID.
func (g *Graph) VertexKey(partID int, p geom.Point) string {
	r := p.Round(g.precisionDecimals)
	return fmt.Sprintf("%d#%.*f_%.*f", partID, g.precisionDecimals, r.X, g.precisionDecimals, r.Y)
}

// AddVertex idempotently registers a vertex at p owned by partID,
// returning its key.
func (g *Graph) AddVertex(partID int, p geom.Point) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addVertexLocked(partID, p)
}

func (g *Graph) addVertexLocked(partID int, p geom.Point) string {
	key := g.VertexKey(partID, p)
	if _, ok := g.vertices[key]; !ok {
		g.vertices[key] = &VertexRecord{Key: key, Point: p.Round(g.precisionDecimals), PartID: partID}
		g.edges[key] = make(map[string]Neighbor)
	}
	return key
}

// AddInteriorEdge inserts a symmetric within-part edge between a and b
// (both owned by partID), registering both endpoints as vertices first.
func (g *Graph) AddInteriorEdge(partID int, a, b geom.Point, length float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	keyA := g.addVertexLocked(partID, a)
	keyB := g.addVertexLocked(partID, b)
	g.setEdgeLocked(keyA, keyB, Neighbor{Length: length, Kind: KindInterior})
}

func (g *Graph) setEdgeLocked(keyA, keyB string, n Neighbor) {
	g.edges[keyA][keyB] = n
	g.edges[keyB][keyA] = n
}

// canonicalPairHash orders keyA/keyB ascending so a jumper between the
// same two vertices is identified the same way regardless of traversal
// direction.
func canonicalPairHash(keyA, keyB string) string {
	if keyB < keyA {
		keyA, keyB = keyB, keyA
	}
	return keyA + "~" + keyB
}

// AddJumper inserts a cross-seam jumper between two already-registered
// vertices. Returns ErrDuplicateEdge (wrapped with the canonical pair) if
// that pair already has a jumper; callers log it once and otherwise
// ignore it.
func (g *Graph) AddJumper(keyA, keyB string, length float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[keyA]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, keyA)
	}
	if _, ok := g.vertices[keyB]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, keyB)
	}

	pair := canonicalPairHash(keyA, keyB)
	if _, exists := g.jumpers[pair]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEdge, pair)
	}

	g.jumpers[pair] = JumperRecord{EndpointA: keyA, EndpointB: keyB, Length: length}
	g.setEdgeLocked(keyA, keyB, Neighbor{Length: length, Kind: KindJumper})
	return nil
}

// PurgeJumpers removes every jumper edge and clears route records,
// returning the removed count and total length. This is the replacement
// step the jumper synthesiser runs before regenerating jumpers for a new
// joint radius.
func (g *Graph) PurgeJumpers() (count int, totalLength float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, rec := range g.jumpers {
		count++
		totalLength += rec.Length
		delete(g.edges[rec.EndpointA], rec.EndpointB)
		delete(g.edges[rec.EndpointB], rec.EndpointA)
	}
	g.jumpers = make(map[string]JumperRecord)
	g.resetRoutesLocked()
	return count, totalLength
}

// ResetRoutes clears both route records on every vertex. Called at the
// start of every sink sample.
func (g *Graph) ResetRoutes() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetRoutesLocked()
}

func (g *Graph) resetRoutesLocked() {
	for _, v := range g.vertices {
		v.RouteShortest = RouteRecord{}
		v.RouteLeastJumpers = RouteRecord{}
	}
}

// SetRouteShortest overwrites key's shortest-wire route record.
func (g *Graph) SetRouteShortest(key string, rec RouteRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteShortest = rec
	}
}

// SetRouteLeastJumpers overwrites key's fewest-jumpers route record.
func (g *Graph) SetRouteLeastJumpers(key string, rec RouteRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteLeastJumpers = rec
	}
}

// IncrementOutgoingBranchesShortest bumps key's shortest-tree branch
// counter by one, tracking fan-out for the router-node-branch
// statistics.
func (g *Graph) IncrementOutgoingBranchesShortest(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteShortest.OutgoingBranches++
	}
}

// IncrementOutgoingBranchesLeastJumpers bumps key's fewest-jumpers-tree
// outgoing_branches counter by one.
func (g *Graph) IncrementOutgoingBranchesLeastJumpers(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteLeastJumpers.OutgoingBranches++
	}
}

// MarkShortestLeaf sets key's shortest-tree is_leaf flag.
func (g *Graph) MarkShortestLeaf(key string, leaf bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteShortest.IsLeaf = leaf
	}
}

// MarkLeastJumpersLeaf sets key's fewest-jumpers-tree is_leaf flag.
func (g *Graph) MarkLeastJumpersLeaf(key string, leaf bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[key]; ok {
		v.RouteLeastJumpers.IsLeaf = leaf
	}
}

// Vertex returns the vertex record for key.
func (g *Graph) Vertex(key string) (*VertexRecord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[key]
	return v, ok
}

// VertexCount returns the total number of distinct vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Neighbors returns a snapshot of key's adjacency.
func (g *Graph) Neighbors(key string) map[string]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]Neighbor, len(g.edges[key]))
	for k, v := range g.edges[key] {
		out[k] = v
	}
	return out
}

// VertexKeys returns every vertex key, sorted for deterministic
// iteration order.
func (g *Graph) VertexKeys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]string, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PartEdge is one interior edge whose endpoints both belong to the same
// part, returned by PartInteriorEdges.
type PartEdge struct {
	KeyA, KeyB     string
	PointA, PointB geom.Point
	Length         float64
}

// PartInteriorEdges returns every interior edge with both endpoints owned
// by partID, deduplicated regardless of traversal direction and sorted in
// canonical ascending key order so that downstream tie-breaking (the
// closest-edge search seeding a routing run) is deterministic. Used by
// the routing engine to locate the edge closest to a sink point.
func (g *Graph) PartInteriorEdges(partID int) []PartEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	var out []PartEdge
	for key, v := range g.vertices {
		if v.PartID != partID {
			continue
		}
		for neighborKey, n := range g.edges[key] {
			if n.Kind != KindInterior {
				continue
			}
			neighbor, ok := g.vertices[neighborKey]
			if !ok || neighbor.PartID != partID {
				continue
			}
			pair := canonicalPairHash(key, neighborKey)
			if seen[pair] {
				continue
			}
			seen[pair] = true
			out = append(out, canonicalEdge(key, neighborKey, v.Point, neighbor.Point, n.Length))
		}
	}
	sortEdges(out)
	return out
}

func canonicalEdge(keyA, keyB string, pointA, pointB geom.Point, length float64) PartEdge {
	if keyB < keyA {
		keyA, keyB = keyB, keyA
		pointA, pointB = pointB, pointA
	}
	return PartEdge{KeyA: keyA, KeyB: keyB, PointA: pointA, PointB: pointB, Length: length}
}

func sortEdges(edges []PartEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].KeyA != edges[j].KeyA {
			return edges[i].KeyA < edges[j].KeyA
		}
		return edges[i].KeyB < edges[j].KeyB
	})
}

// AllInteriorEdges returns every interior edge in the graph regardless of
// owning part, deduplicated regardless of traversal direction and sorted
// in canonical ascending key order. Used by the per-sink accounting step
// to split total wire length into its reachable/unreachable portions.
func (g *Graph) AllInteriorEdges() []PartEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	var out []PartEdge
	for key, v := range g.vertices {
		for neighborKey, n := range g.edges[key] {
			if n.Kind != KindInterior {
				continue
			}
			pair := canonicalPairHash(key, neighborKey)
			if seen[pair] {
				continue
			}
			seen[pair] = true
			neighbor, ok := g.vertices[neighborKey]
			if !ok {
				continue
			}
			out = append(out, canonicalEdge(key, neighborKey, v.Point, neighbor.Point, n.Length))
		}
	}
	sortEdges(out)
	return out
}

// Jumpers returns a snapshot of every current jumper record.
func (g *Graph) Jumpers() []JumperRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]JumperRecord, 0, len(g.jumpers))
	for _, j := range g.jumpers {
		out = append(out, j)
	}
	return out
}
