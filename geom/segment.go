package geom

import "math"

// Segment is an ordered pair of points (A -> B).
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// vector returns B-A.
func (s Segment) vector() Point {
	return s.B.Sub(s.A)
}

// Project returns the normalized parametric position in [0,1] of the point
// on the (infinite extension of the) segment closest to p, clamped to the
// segment itself.
func (s Segment) Project(p Point) float64 {
	v := s.vector()
	denom := v.Dot(v)
	if denom == 0 {
		return 0
	}
	t := p.Sub(s.A).Dot(v) / denom
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate returns the point at normalized parametric position t along
// the segment (t is clamped to [0,1]).
func (s Segment) Interpolate(t float64) Point {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return s.A.Add(s.vector().Scale(t))
}

// DistanceToPoint returns the minimum distance from p to the closest point
// on the (clamped) segment.
func (s Segment) DistanceToPoint(p Point) float64 {
	closest := s.Interpolate(s.Project(p))
	return p.Distance(closest)
}

// intersectKind classifies how two segments meet.
type intersectKind int

const (
	intersectNone intersectKind = iota
	intersectPoint
	intersectOverlap
)

// intersection describes the result of intersecting two segments.
type intersection struct {
	kind      intersectKind
	point     Point    // valid when kind == intersectPoint
	overlap   Segment  // valid when kind == intersectOverlap
}

const parallelEpsilon = 1e-9

// intersect computes the intersection of two finite segments, classifying
// it as none, a single point, or a collinear overlapping sub-segment.
func intersect(s1, s2 Segment) intersection {
	r := s1.vector()
	q := s2.vector()
	rxq := r.Cross(q)
	qmp := s2.A.Sub(s1.A)

	if math.Abs(rxq) < parallelEpsilon {
		// Parallel or collinear.
		if math.Abs(qmp.Cross(r)) > parallelEpsilon {
			return intersection{kind: intersectNone} // parallel, not collinear
		}
		// Collinear: project onto r and find overlapping parameter interval.
		rr := r.Dot(r)
		if rr == 0 {
			// s1 degenerates to a point.
			if s2.DistanceToPoint(s1.A) < parallelEpsilon {
				return intersection{kind: intersectPoint, point: s1.A}
			}
			return intersection{kind: intersectNone}
		}
		t0 := qmp.Dot(r) / rr
		t1 := t0 + q.Dot(r)/rr
		lo, hi := t0, t1
		if lo > hi {
			lo, hi = hi, lo
		}
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 1)
		if lo > hi+parallelEpsilon {
			return intersection{kind: intersectNone}
		}
		if math.Abs(hi-lo) < parallelEpsilon {
			return intersection{kind: intersectPoint, point: s1.Interpolate(lo)}
		}
		return intersection{kind: intersectOverlap, overlap: Segment{A: s1.Interpolate(lo), B: s1.Interpolate(hi)}}
	}

	t := qmp.Cross(q) / rxq
	u := qmp.Cross(r) / rxq
	if t < -parallelEpsilon || t > 1+parallelEpsilon || u < -parallelEpsilon || u > 1+parallelEpsilon {
		return intersection{kind: intersectNone}
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return intersection{kind: intersectPoint, point: s1.Interpolate(t)}
}
