package wiregraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

func TestAddInteriorEdge_Symmetric(t *testing.T) {
	g := wiregraph.NewGraph(6)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	g.AddInteriorEdge(0, a, b, 10)

	keyA := g.VertexKey(0, a)
	keyB := g.VertexKey(0, b)

	nA := g.Neighbors(keyA)
	nB := g.Neighbors(keyB)
	require.Contains(t, nA, keyB)
	require.Contains(t, nB, keyA)
	assert.Equal(t, wiregraph.KindInterior, nA[keyB].Kind)
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddJumper_DuplicateIsError(t *testing.T) {
	g := wiregraph.NewGraph(6)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	keyA := g.AddVertex(0, a)
	keyB := g.AddVertex(1, b)

	require.NoError(t, g.AddJumper(keyA, keyB, 10))
	err := g.AddJumper(keyA, keyB, 10)
	assert.ErrorIs(t, err, wiregraph.ErrDuplicateEdge)

	// The reversed endpoint order must be caught too (canonical pairing).
	err = g.AddJumper(keyB, keyA, 10)
	assert.ErrorIs(t, err, wiregraph.ErrDuplicateEdge)
}

func TestPurgeJumpers_RemovesOnlyJumpers(t *testing.T) {
	g := wiregraph.NewGraph(6)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	c := geom.Point{X: 20, Y: 0}
	g.AddInteriorEdge(0, a, b, 10)
	keyB := g.VertexKey(0, b)
	keyC := g.AddVertex(1, c)
	require.NoError(t, g.AddJumper(keyB, keyC, 10))

	count, length := g.PurgeJumpers()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 10, length, 1e-9)

	neighbors := g.Neighbors(keyB)
	assert.NotContains(t, neighbors, keyC)
	keyA := g.VertexKey(0, a)
	assert.Contains(t, neighbors, keyA, "interior edge must survive a jumper purge")
}

func TestResetRoutes_ClearsRecords(t *testing.T) {
	g := wiregraph.NewGraph(6)
	a := geom.Point{X: 0, Y: 0}
	key := g.AddVertex(0, a)
	g.SetRouteShortest(key, wiregraph.RouteRecord{Valid: true, Distance: 5})

	g.ResetRoutes()
	v, ok := g.Vertex(key)
	require.True(t, ok)
	assert.False(t, v.RouteShortest.Valid)
}
