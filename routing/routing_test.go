package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/routing"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// gridGraph builds a 3x3 interior grid entirely within part 0.
func gridGraph() *wiregraph.Graph {
	g := wiregraph.NewGraph(6)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x < 2 {
				g.AddInteriorEdge(0, geom.Point{X: float64(x), Y: float64(y)}, geom.Point{X: float64(x + 1), Y: float64(y)}, 1)
			}
			if y < 2 {
				g.AddInteriorEdge(0, geom.Point{X: float64(x), Y: float64(y)}, geom.Point{X: float64(x), Y: float64(y + 1)}, 1)
			}
		}
	}
	return g
}

func TestRun_AllVerticesReachableOnSingleGrid(t *testing.T) {
	g := gridGraph()
	res, err := routing.Run(g, 0, geom.Point{X: 1, Y: 1})
	require.NoError(t, err)

	assert.Len(t, res.ReachableShortest, 9)
	assert.Len(t, res.ReachableLeastJumpers, 9)
}

func TestRun_NoInteriorEdges(t *testing.T) {
	g := wiregraph.NewGraph(6)
	g.AddVertex(0, geom.Point{X: 0, Y: 0})
	_, err := routing.Run(g, 0, geom.Point{X: 0, Y: 0})
	assert.ErrorIs(t, err, routing.ErrNoInteriorEdges)
}

func TestRun_JumperCountedInTree(t *testing.T) {
	g := wiregraph.NewGraph(6)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 2, Y: 0}
	g.AddInteriorEdge(0, a, b, 1)
	keyB := g.VertexKey(0, b)
	keyC := g.AddVertex(1, c)
	require.NoError(t, g.AddJumper(keyB, keyC, 1))

	_, err := routing.Run(g, 0, a)
	require.NoError(t, err)

	vC, ok := g.Vertex(keyC)
	require.True(t, ok)
	assert.True(t, vC.RouteShortest.Valid)
	assert.Equal(t, 1, vC.RouteShortest.JumperCount)
}

func TestCompareStrategies_RunsWithoutError(t *testing.T) {
	g := gridGraph()
	diffs, err := routing.CompareStrategies(g, 0, geom.Point{X: 1, Y: 1})
	require.NoError(t, err)
	// A single connected interior grid has no jumpers at all, so both
	// strategies must agree everywhere.
	assert.Empty(t, diffs)
}
