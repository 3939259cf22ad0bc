package geom

// Polyline is a connected, ordered chain of points (not implicitly closed).
// It backs a part's named segment: the sub-range of its outline the
// segment spans.
type Polyline struct {
	Points []Point
}

// segments returns the consecutive segments making up the polyline.
func (pl Polyline) segments() []Segment {
	segs := make([]Segment, 0, len(pl.Points)-1)
	for i := 0; i+1 < len(pl.Points); i++ {
		segs = append(segs, Segment{A: pl.Points[i], B: pl.Points[i+1]})
	}
	return segs
}

// Length returns the total length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for _, s := range pl.segments() {
		total += s.Length()
	}
	return total
}

// DistanceToPoint returns the minimum distance from p to the polyline.
func (pl Polyline) DistanceToPoint(p Point) float64 {
	min := segmentsMinDistance(pl.segments(), p)
	return min
}

func segmentsMinDistance(segs []Segment, p Point) float64 {
	best := segs[0].DistanceToPoint(p)
	for _, s := range segs[1:] {
		if d := s.DistanceToPoint(p); d < best {
			best = d
		}
	}
	return best
}

// Project returns the normalized parametric position in [0,1] along the
// whole polyline of the point closest to p: it walks every constituent
// segment, keeps the closest projection found, and reports its
// cumulative-length-based position.
func (pl Polyline) Project(p Point) float64 {
	segs := pl.segments()
	total := pl.Length()
	if total == 0 {
		return 0
	}

	var bestPos float64
	segsBestProjection(segs, p, &bestPos)
	return bestPos / total
}

// segsBestProjection walks segs accumulating length, tracking the closest
// projection to p; *bestPosOut receives the along-polyline distance (not
// yet normalized) of the closest projection. Returns the minimal distance.
func segsBestProjection(segs []Segment, p Point, bestPosOut *float64) float64 {
	var cumulative float64
	bestDist := segs[0].DistanceToPoint(p)
	*bestPosOut = cumulative + segs[0].Project(p)*segs[0].Length()

	for _, s := range segs {
		d := s.DistanceToPoint(p)
		t := s.Project(p)
		pos := cumulative + t*s.Length()
		if d < bestDist {
			bestDist = d
			*bestPosOut = pos
		}
		cumulative += s.Length()
	}
	return bestDist
}

// Interpolate returns the point at normalized parametric position t (in
// [0,1], clamped) measured along cumulative polyline length.
func (pl Polyline) Interpolate(t float64) Point {
	segs := pl.segments()
	total := pl.Length()
	if total == 0 {
		return pl.Points[0]
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	target := t * total
	var cumulative float64
	for _, s := range segs {
		segLen := s.Length()
		if target <= cumulative+segLen || segLen == 0 {
			local := 0.0
			if segLen > 0 {
				local = (target - cumulative) / segLen
			}
			return s.Interpolate(local)
		}
		cumulative += segLen
	}
	return segs[len(segs)-1].B
}
