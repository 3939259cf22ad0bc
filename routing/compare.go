package routing

import (
	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// Divergence records one vertex where the FIFO and strict Dijkstra
// fewest-jumpers passes disagree.
type Divergence struct {
	Key               string
	FIFOJumperCount   int
	StrictJumperCount int
	FIFODistance      float64
	StrictDistance    float64
}

// CompareStrategies runs the fewest-jumpers tree twice from the same
// sink, once with the default FIFO relaxation and once with the strict
// lexicographic-key Dijkstra pass, and reports every vertex where the two
// disagree on jumper count or distance. An empty result means the FIFO
// pass happened to settle every vertex optimally for this graph and sink;
// a non-empty result pinpoints where its early exclusion-list commitments
// cost it.
func CompareStrategies(g *wiregraph.Graph, sinkPartID int, sinkPoint geom.Point) ([]Divergence, error) {
	if _, err := Run(g, sinkPartID, sinkPoint, WithStrictFewestJumpers(false)); err != nil {
		return nil, err
	}
	fifoResults := snapshotLeastJumpers(g)

	if _, err := Run(g, sinkPartID, sinkPoint, WithStrictFewestJumpers(true)); err != nil {
		return nil, err
	}
	strictResults := snapshotLeastJumpers(g)

	var diffs []Divergence
	for key, fifoRec := range fifoResults {
		strictRec, ok := strictResults[key]
		if !ok {
			continue
		}
		if fifoRec.JumperCount != strictRec.JumperCount || fifoRec.Distance != strictRec.Distance {
			diffs = append(diffs, Divergence{
				Key:               key,
				FIFOJumperCount:   fifoRec.JumperCount,
				StrictJumperCount: strictRec.JumperCount,
				FIFODistance:      fifoRec.Distance,
				StrictDistance:    strictRec.Distance,
			})
		}
	}
	return diffs, nil
}

func snapshotLeastJumpers(g *wiregraph.Graph) map[string]wiregraph.RouteRecord {
	out := make(map[string]wiregraph.RouteRecord)
	for _, key := range g.VertexKeys() {
		v, ok := g.Vertex(key)
		if !ok || !v.RouteLeastJumpers.Valid {
			continue
		}
		out[key] = v.RouteLeastJumpers
	}
	return out
}
