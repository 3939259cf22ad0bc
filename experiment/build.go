package experiment

import (
	"fmt"

	"github.com/krisjanis-nesenbergs/garmentwire/garment"
	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/jumper"
	"github.com/krisjanis-nesenbergs/garmentwire/tessellate"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// built is the tessellation/graph product of one buildGraph call, before
// any jumpers are synthesized.
type built struct {
	graph            *wiregraph.Graph
	gridLength       float64
	centerNodeCount  int
	edgeNodeCount    int
	edgePointsByPart [][]geom.Point
}

// buildGraph tessellates every part of gar and inserts the resulting
// interior grids into a fresh wiregraph.Graph. It does not synthesize
// jumpers; callers run jumper.Synthesize separately so a joint-radius
// sweep can reuse one tessellation across radii.
func buildGraph(gar *garment.Garment, cfg Config) (*built, error) {
	g := wiregraph.NewGraph(cfg.PrecisionDecimals)

	b := &built{
		graph:            g,
		edgePointsByPart: make([][]geom.Point, gar.PartCount()),
	}

	for partID := 0; partID < gar.PartCount(); partID++ {
		seed := gar.Seeds()[partID]
		bounds := gar.AdjustedPartBounds(partID)

		result, err := tessellate.Generate(
			cfg.TessellationAlgorithm, cfg.NodeDistance, bounds, seed.Point, seed.Angle,
			tessellate.WithMaximumIterations(cfg.MaxTessellationIterations),
			tessellate.WithPrecisionDecimals(cfg.PrecisionDecimals),
		)
		if err != nil {
			return nil, fmt.Errorf("experiment: tessellating part %d: %w", partID, err)
		}

		for _, seg := range result.EdgeList() {
			g.AddInteriorEdge(partID, seg.A, seg.B, seg.Length())
		}

		b.gridLength += result.GridLength()
		b.centerNodeCount += result.VertexCount()
		edgePoints := result.EdgePointList()
		b.edgePointsByPart[partID] = edgePoints
		b.edgeNodeCount += len(edgePoints)
	}

	totalNodeCount := b.centerNodeCount + b.edgeNodeCount
	if g.VertexCount() != totalNodeCount {
		return nil, fmt.Errorf("%w: graph has %d vertices, expected %d", ErrGraphInconsistency, g.VertexCount(), totalNodeCount)
	}

	return b, nil
}

// synthesizeJumpers regenerates every jumper edge for the configured
// joint radius.
func synthesizeJumpers(b *built, gar *garment.Garment, cfg Config) jumper.Result {
	tolerance := jumper.DefaultPrecisionTolerance(cfg.PrecisionDecimals)
	return jumper.Synthesize(b.graph, gar, b.edgePointsByPart, cfg.JointRadius, tolerance)
}
