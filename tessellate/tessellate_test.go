package tessellate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/tessellate"
)

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	_, err := tessellate.Generate("not-a-real-tiling", 5, geom.Polygon{}, geom.Point{}, 0, tessellate.WithMaximumIterations(10))
	require.ErrorIs(t, err, tessellate.ErrUnknownAlgorithm)
}

func TestGenerate_MissingBoundsAndIterationCap(t *testing.T) {
	_, err := tessellate.Generate("6.6.6", 5, geom.Polygon{}, geom.Point{}, 0)
	require.ErrorIs(t, err, tessellate.ErrInvalidGeometry)
}

func TestGenerate_SeedOutsideBounds(t *testing.T) {
	bounds := triangle()
	_, err := tessellate.Generate("6.6.6", 5, bounds, geom.Point{X: 100, Y: 100}, 0, tessellate.WithMaximumIterations(50))
	require.ErrorIs(t, err, tessellate.ErrInvalidGeometry)
}

// TestGenerate_TriangleStaysInBounds: a triangular part tiled with
// 3.3.3.3.3.3 from its centroid must produce a grid whose edges never
// exit the boundary except via recorded edge-points.
func TestGenerate_TriangleStaysInBounds(t *testing.T) {
	bounds := triangle()
	centroid := geom.Point{X: 25, Y: 14.4336_66666}

	result, err := tessellate.Generate("3.3.3.3.3.3", 5, bounds, centroid, 0, tessellate.WithMaximumIterations(2000))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Greater(t, result.VertexCount(), 0)
	assert.Greater(t, len(result.Network), 0)
	assert.Greater(t, len(result.EdgePoints), 0, "a bounded tiling must clip at the boundary somewhere")
	assert.Greater(t, result.GridLength(), 0.0)

	// The triangle is convex, so an edge stays inside it exactly when
	// both of its endpoints do (boundary points count as contained).
	for _, seg := range result.EdgeList() {
		assert.True(t, bounds.Contains(seg.A), "edge start %v lies outside the bounds", seg.A)
		assert.True(t, bounds.Contains(seg.B), "edge end %v lies outside the bounds", seg.B)
	}
}

// TestGenerate_SquareExactCounts: a 95x95 square tiled 4.4.4.4 at edge
// length 10 from a half-offset center seed produces a 9x9 interior
// lattice, one boundary clip per lattice row/column on each side, and a
// grid length of 144 interior edges of 10 plus 36 boundary stubs of 7.5.
// The half-offset seed keeps lattice points away from the boundary ring
// so the counts are stable against floating-point drift.
func TestGenerate_SquareExactCounts(t *testing.T) {
	bounds := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 95, Y: 0}, {X: 95, Y: 95}, {X: 0, Y: 95},
	}}

	result, err := tessellate.Generate("4.4.4.4", 10, bounds, geom.Point{X: 47.5, Y: 47.5}, 0, tessellate.WithMaximumIterations(10000))
	require.NoError(t, err)

	assert.Equal(t, 81, result.VertexCount())
	assert.Len(t, result.EdgePointList(), 36)
	assert.InDelta(t, 1710.0, result.GridLength(), 1e-6)
}

func TestGenerate_AllKnownAlgorithmsRun(t *testing.T) {
	bounds := triangle()
	centroid := geom.Point{X: 25, Y: 14.4336_66666}
	for _, algo := range []string{
		"3.3.3.3.3.3", "3.3.3.3.6", "3.3.3.4.4", "3.3.4.3.4", "3.4.6.4",
		"3.6.3.6", "3.12.12", "4.4.4.4", "4.6.12", "4.8.8", "6.6.6",
		"4.6.12.a", "4.6.12.b",
	} {
		t.Run(algo, func(t *testing.T) {
			result, err := tessellate.Generate(algo, 5, bounds, centroid, 0, tessellate.WithMaximumIterations(500))
			require.NoError(t, err)
			assert.Greater(t, result.VertexCount(), 0)
		})
	}
}

// TestGenerate_ConcaveSlotPicksNearestReentryPoint exercises the
// RingCrossMultiple branch of clipAgainstBounds on a concave ("staple")
// polygon: a slot cut from the top of a square leaves two towers joined
// by a bottom strip. A candidate edge spanning straight across the slot
// crosses the boundary twice and lands back inside the far tower, so the
// tessellator must record the entry point nearest the segment's far
// endpoint (not the one nearest its start, which is the first clip point
// already recorded) as the second edge-point, and emit a stub segment
// from that entry point to the far endpoint.
func TestGenerate_ConcaveSlotPicksNearestReentryPoint(t *testing.T) {
	bounds := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 70, Y: 100},
		{X: 70, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 100}, {X: 0, Y: 100},
	}}

	result, err := tessellate.Generate("4.4.4.4", 80, bounds, geom.Point{X: 10, Y: 50}, 0, tessellate.WithMaximumIterations(50))
	require.NoError(t, err)

	exitPoint := geom.Point{X: 30, Y: 50}
	entryPoint := geom.Point{X: 70, Y: 50}

	foundExit, foundEntry := false, false
	for _, p := range result.EdgePointList() {
		if p.Distance(exitPoint) < 1e-6 {
			foundExit = true
		}
		if p.Distance(entryPoint) < 1e-6 {
			foundEntry = true
		}
	}
	assert.True(t, foundExit, "expected an edge-point at the slot's left wall (30,50)")
	assert.True(t, foundEntry, "expected an edge-point at the slot's right wall (70,50), nearest the segment's far endpoint")

	foundStub := false
	for _, seg := range result.EdgeList() {
		if (seg.A.Distance(entryPoint) < 1e-6 && seg.B.Distance(geom.Point{X: 90, Y: 50}) < 1e-6) ||
			(seg.B.Distance(entryPoint) < 1e-6 && seg.A.Distance(geom.Point{X: 90, Y: 50}) < 1e-6) {
			foundStub = true
		}
	}
	assert.True(t, foundStub, "expected the stub segment from the re-entry point to the far endpoint")
}

// TestGenerate_Idempotent: two runs with identical inputs produce
// identical edge and vertex hashes.
func TestGenerate_Idempotent(t *testing.T) {
	bounds := triangle()
	centroid := geom.Point{X: 25, Y: 14.4336_66666}

	first, err := tessellate.Generate("3.6.3.6", 5, bounds, centroid, 30, tessellate.WithMaximumIterations(2000))
	require.NoError(t, err)
	second, err := tessellate.Generate("3.6.3.6", 5, bounds, centroid, 30, tessellate.WithMaximumIterations(2000))
	require.NoError(t, err)

	assert.Equal(t, first.Network, second.Network)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.EdgePoints, second.EdgePoints)
}

func triangle() geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 25, Y: 43.301},
	}}
}
