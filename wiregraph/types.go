package wiregraph

import "github.com/krisjanis-nesenbergs/garmentwire/geom"

// EdgeKind distinguishes a within-part tessellation edge from a
// cross-seam jumper.
type EdgeKind int

const (
	KindInterior EdgeKind = iota
	KindJumper
)

// Neighbor is one symmetric adjacency entry: the edge's length and kind.
type Neighbor struct {
	Length float64
	Kind   EdgeKind
}

// RouteRecord is a single shortest-path-tree entry for one vertex. Valid
// is false for the unset state. ExclusionPartIDs is nil for the
// shortest-wire tree (which never excludes anything) and a (possibly
// empty) copy-on-grow slice for the fewest-jumpers tree.
type RouteRecord struct {
	Valid            bool
	JumperCount      int
	Distance         float64
	NodeCount        int
	ExclusionPartIDs []int
	Previous         string
	IsLeaf           bool
	OutgoingBranches int
}

// VertexRecord is one vertex's complete state: its geometry, owning
// part, and the two route records the routing engine fills in.
type VertexRecord struct {
	Key               string
	Point             geom.Point
	PartID            int
	RouteShortest     RouteRecord
	RouteLeastJumpers RouteRecord
}

// JumperRecord reports one synthesized jumper's endpoints and length, for
// per-jumper statistics.
type JumperRecord struct {
	EndpointA, EndpointB string
	Length               float64
}
