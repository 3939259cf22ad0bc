package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
)

func TestPointVectorOps(t *testing.T) {
	a := geom.Point{X: 3, Y: 4}
	b := geom.Point{X: 1, Y: 2}

	assert.Equal(t, geom.Point{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, geom.Point{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, geom.Point{X: 6, Y: 8}, a.Scale(2))
	assert.InDelta(t, 11, a.Dot(b), 1e-9)
	assert.InDelta(t, 5, a.Distance(geom.Point{}), 1e-9)
}

func TestPointRound(t *testing.T) {
	p := geom.Point{X: 1.23456789, Y: -0.0000001}
	r := p.Round(6)
	assert.InDelta(t, 1.234568, r.X, 1e-9)
	assert.InDelta(t, 0, r.Y, 1e-9)
}

func TestSegmentProjectInterpolate(t *testing.T) {
	s := geom.Segment{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}}

	assert.InDelta(t, 0.5, s.Project(geom.Point{X: 5, Y: 3}), 1e-9)
	assert.InDelta(t, 0, s.Project(geom.Point{X: -5, Y: 0}), 1e-9)
	assert.InDelta(t, 1, s.Project(geom.Point{X: 15, Y: 0}), 1e-9)

	mid := s.Interpolate(0.5)
	assert.Equal(t, geom.Point{X: 5, Y: 0}, mid)

	assert.InDelta(t, 3, s.DistanceToPoint(geom.Point{X: 5, Y: 3}), 1e-9)
}

func TestPolygonAreaAndBounds(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	assert.InDelta(t, 100, square.Area(), 1e-9)

	minX, minY, maxX, maxY := square.Bounds()
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 10.0, maxX)
	assert.Equal(t, 10.0, maxY)
}

func TestPolygonContains(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}

	assert.True(t, square.Contains(geom.Point{X: 5, Y: 5}))
	assert.True(t, square.Contains(geom.Point{X: 0, Y: 5}), "boundary point should be contained")
	assert.False(t, square.Contains(geom.Point{X: 15, Y: 5}))
}

// TestPolygonCross_None verifies a wholly interior segment crosses nothing.
func TestPolygonCross_None(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	seg := geom.Segment{A: geom.Point{X: 2, Y: 2}, B: geom.Point{X: 8, Y: 8}}
	cross := square.Cross(seg)
	assert.Equal(t, geom.RingCrossNone, cross.Kind)
}

// TestPolygonCross_Single verifies a segment exiting through one edge
// reports a single crossing point.
func TestPolygonCross_Single(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	seg := geom.Segment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 5, Y: 15}}
	cross := square.Cross(seg)
	require.Equal(t, geom.RingCrossSingle, cross.Kind)
	assert.InDelta(t, 5, cross.Point.X, 1e-9)
	assert.InDelta(t, 10, cross.Point.Y, 1e-9)
}

// TestPolygonCross_Multiple verifies a segment that crosses two opposite
// edges of the ring (passing fully through the polygon from outside to
// outside) yields a Multiple classification with both crossing points
// available for nearest/farthest resolution by the caller.
func TestPolygonCross_Multiple(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	seg := geom.Segment{A: geom.Point{X: -5, Y: 5}, B: geom.Point{X: 15, Y: 5}}
	cross := square.Cross(seg)
	require.Equal(t, geom.RingCrossMultiple, cross.Kind)
	require.Len(t, cross.Points, 2)

	nearest := geom.ClosestPoint(seg.A, cross.Points)
	assert.InDelta(t, 0, nearest.X, 1e-9)
}

// TestPolygonCross_Overlap verifies a segment collinear with one boundary
// edge (coincident over a sub-interval) is classified as an overlap.
func TestPolygonCross_Overlap(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	seg := geom.Segment{A: geom.Point{X: 2, Y: 0}, B: geom.Point{X: 8, Y: 0}}
	cross := square.Cross(seg)
	require.Equal(t, geom.RingCrossOverlap, cross.Kind)
	assert.InDelta(t, 2, math.Min(cross.Overlap.A.X, cross.Overlap.B.X), 1e-9)
	assert.InDelta(t, 8, math.Max(cross.Overlap.A.X, cross.Overlap.B.X), 1e-9)
}

func TestPolylineProjectInterpolate(t *testing.T) {
	pl := geom.Polyline{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	}}
	assert.InDelta(t, 20, pl.Length(), 1e-9)

	// Quarter-way along the whole polyline (length 20) lands mid first segment.
	q := pl.Interpolate(0.25)
	assert.InDelta(t, 5, q.X, 1e-9)
	assert.InDelta(t, 0, q.Y, 1e-9)

	// Three-quarter-way lands mid second segment.
	tq := pl.Interpolate(0.75)
	assert.InDelta(t, 10, tq.X, 1e-9)
	assert.InDelta(t, 5, tq.Y, 1e-9)

	pos := pl.Project(geom.Point{X: 10, Y: 5})
	assert.InDelta(t, 0.75, pos, 1e-9)
}
