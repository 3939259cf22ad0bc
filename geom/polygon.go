package geom

import "math"

// Polygon is a simple closed ring: an ordered list of points with implicit
// closure from the last point back to the first. Invariants (enforced by
// callers, not this type): at least 3 points, non-self-intersecting.
type Polygon struct {
	Points []Point
}

// edge returns the i-th boundary edge (0-indexed, wrapping).
func (p Polygon) edge(i int) Segment {
	n := len(p.Points)
	return Segment{A: p.Points[i], B: p.Points[(i+1)%n]}
}

// edgeCount returns the number of boundary edges (== number of points).
func (p Polygon) edgeCount() int {
	return len(p.Points)
}

// Area returns the unsigned area of the polygon via the shoelace formula.
func (p Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Bounds returns the axis-aligned bounding box (minX, minY, maxX, maxY).
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}

// Contains reports whether pt lies inside the polygon, using the
// standard ray-casting (even-odd) rule. Points exactly on the boundary
// are reported as contained; callers needing an exact boundary
// distinction should use DistanceToBoundary instead.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p.Points[i], p.Points[j]
		if p.onSegment(pi, pj, pt) {
			return true
		}
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func (Polygon) onSegment(a, b, pt Point) bool {
	seg := Segment{A: a, B: b}
	return seg.DistanceToPoint(pt) < 1e-9
}

// DistanceToBoundary returns the minimum distance from pt to any edge of
// the polygon's boundary ring.
func (p Polygon) DistanceToBoundary(pt Point) float64 {
	min := math.Inf(1)
	for i := 0; i < p.edgeCount(); i++ {
		d := p.edge(i).DistanceToPoint(pt)
		if d < min {
			min = d
		}
	}
	return min
}

// RingCrossKind classifies how a candidate segment meets the polygon's
// boundary ring.
type RingCrossKind int

const (
	// RingCrossNone means the segment does not touch the boundary at all
	// (it is wholly interior, assuming its start point is inside).
	RingCrossNone RingCrossKind = iota
	// RingCrossSingle means exactly one boundary geometry was hit and it
	// was a single point.
	RingCrossSingle
	// RingCrossOverlap means exactly one boundary geometry was hit and it
	// was a coincident overlapping sub-segment.
	RingCrossOverlap
	// RingCrossMultiple means zero-shaped-as-empty was not the case and
	// more than one discrete boundary geometry was hit (or exactly one
	// but ambiguous under pointification) — callers resolve nearest and
	// farthest crossing points from the Points field.
	RingCrossMultiple
)

// RingCross is the result of classifying seg against a polygon boundary.
type RingCross struct {
	Kind    RingCrossKind
	Point   Point     // valid when Kind == RingCrossSingle
	Overlap Segment   // valid when Kind == RingCrossOverlap
	Points  []Point   // valid when Kind == RingCrossMultiple; pointified candidates
}

// Cross classifies the intersection of seg with the polygon's boundary
// ring: zero hits means wholly interior (given an interior start point),
// a lone point or a lone coincident overlap segment is truncation-worthy
// on its own, and everything else is resolved by the caller via
// nearest/farthest point lookup over the pointified candidates.
func (p Polygon) Cross(seg Segment) RingCross {
	var points []Point
	var overlaps []Segment

	for i := 0; i < p.edgeCount(); i++ {
		hit := intersect(seg, p.edge(i))
		switch hit.kind {
		case intersectPoint:
			points = appendPointDedup(points, hit.point)
		case intersectOverlap:
			overlaps = append(overlaps, hit.overlap)
		}
	}

	total := len(points) + len(overlaps)
	switch {
	case total == 0:
		return RingCross{Kind: RingCrossNone}
	case total == 1 && len(points) == 1:
		return RingCross{Kind: RingCrossSingle, Point: points[0]}
	case total == 1 && len(overlaps) == 1:
		return RingCross{Kind: RingCrossOverlap, Overlap: overlaps[0]}
	default:
		all := append([]Point{}, points...)
		for _, ov := range overlaps {
			all = append(all, ov.A, ov.B)
		}
		return RingCross{Kind: RingCrossMultiple, Points: all}
	}
}

// appendPointDedup appends pt to pts unless an existing entry is within
// tolerance, avoiding duplicate crossing points where a candidate segment
// passes exactly through a shared ring vertex (hit twice, once per
// adjacent edge).
func appendPointDedup(pts []Point, pt Point) []Point {
	const tol = 1e-9
	for _, existing := range pts {
		if existing.Distance(pt) < tol {
			return pts
		}
	}
	return append(pts, pt)
}

// ClosestPoint returns whichever point in candidates is nearest to from.
// Panics if candidates is empty; callers only invoke this on non-empty
// RingCrossMultiple.Points slices.
func ClosestPoint(from Point, candidates []Point) Point {
	best := candidates[0]
	bestDist := from.Distance(best)
	for _, c := range candidates[1:] {
		if d := from.Distance(c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
