package tessellate

import (
	"fmt"
	"log"
	"math"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
)

// walker carries the mutable state of one recursive tessellation run: the
// grid under construction, the visited-vertex set, and the remaining
// iteration budget.
type walker struct {
	cfg        config
	bounds     geom.Polygon
	edgeLength float64
	tiling     tilingConfig
	iterLeft   int
	hasIterCap bool

	network    map[string]geom.Segment
	points     map[string]geom.Point
	edgePoints map[string]geom.Point
}

// Generate performs a depth-first traversal of the implicit infinite
// planar tiling named by algorithm, seeded at point with the given
// initial direction (degrees), clipping every candidate edge against
// bounds.
func Generate(algorithm string, edgeLength float64, bounds geom.Polygon, point geom.Point, initialAngle float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tiling, ok := tilings[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	if bounds.Points == nil && cfg.maxIterations == nil {
		return nil, fmt.Errorf("%w: must set either bounds or a maximum iteration cap", ErrInvalidGeometry)
	}
	if edgeLength <= 0 {
		return nil, fmt.Errorf("%w: edge_length must be > 0", ErrInvalidGeometry)
	}
	if bounds.Points != nil {
		if len(bounds.Points) < 3 {
			return nil, fmt.Errorf("%w: bounds must have at least 3 points", ErrInvalidGeometry)
		}
		if bounds.Area() < 1e-7 {
			return nil, fmt.Errorf("%w: bounds must enclose an area > 0", ErrInvalidGeometry)
		}
		if !bounds.Contains(point) {
			return nil, fmt.Errorf("%w: seed point must be inside bounds", ErrInvalidGeometry)
		}
	}

	w := &walker{
		cfg:        cfg,
		bounds:     bounds,
		edgeLength: edgeLength,
		tiling:     tiling,
		network:    make(map[string]geom.Segment),
		points:     make(map[string]geom.Point),
		edgePoints: make(map[string]geom.Point),
	}
	if cfg.maxIterations != nil {
		w.hasIterCap = true
		w.iterLeft = *cfg.maxIterations + 1
	}

	exhausted := w.tessellate(point, initialAngle, 0, true, "")

	return &Result{
		Algorithm:  algorithm,
		Network:    w.network,
		Points:     w.points,
		EdgePoints: w.edgePoints,
		Exhausted:  exhausted,
	}, nil
}

func (w *walker) pointHash(p geom.Point) string {
	r := p.Round(w.cfg.precisionDecimals)
	return fmt.Sprintf("%.*f_%.*f", w.cfg.precisionDecimals, r.X, w.cfg.precisionDecimals, r.Y)
}

func (w *walker) edgeHash(a, b geom.Point) string {
	ha, hb := w.pointHash(a), w.pointHash(b)
	if hb < ha {
		ha, hb = hb, ha
	}
	return ha + "-" + hb
}

func (w *walker) debug(path, msg string) {
	if w.cfg.debugRecursion {
		log.Printf("tessellate[%s] %s", path, msg)
	}
}

// tessellate is the recursive DFS step. It returns true if the overall
// run was cut short by the iteration cap anywhere in the recursion tree
// (propagated up so Generate can report a partial result).
func (w *walker) tessellate(point geom.Point, zeroAngle float64, angleIndex int, counterClockwise bool, path string) bool {
	if w.hasIterCap {
		w.iterLeft--
		if w.iterLeft < 1 {
			w.debug(path, "iteration budget exhausted")
			return true
		}
	}

	ph := w.pointHash(point)
	if _, seen := w.points[ph]; seen {
		w.debug(path, "dead end: point already processed")
		return false
	}
	w.points[ph] = point

	angles := w.tiling.angles
	if counterClockwise && w.tiling.mirror != nil {
		angles = w.tiling.mirror
	}
	stepCount := len(angles)

	exhausted := false
	currentAngle := zeroAngle
	for i := 0; i < stepCount; i++ {
		currentAngleIndex := (i + angleIndex) % stepCount
		currentAngle += angles[currentAngleIndex]

		endPoint := geom.Point{
			X: point.X + w.edgeLength*math.Cos(currentAngle*math.Pi/180),
			Y: point.Y + w.edgeLength*math.Sin(currentAngle*math.Pi/180),
		}
		newEdge := geom.Segment{A: point, B: endPoint}
		outOfBounds := false

		if w.edgeIsNew(newEdge) {
			drawTo, stop := w.clipAgainstBounds(point, endPoint, newEdge)
			outOfBounds = stop
			newEdge = geom.Segment{A: point, B: drawTo}
			w.network[w.edgeHash(newEdge.A, newEdge.B)] = newEdge
		}

		if outOfBounds {
			continue
		}

		newDirection := !counterClockwise
		reversedAngle := math.Mod(currentAngle+180, 360)
		nextAngleIndex := w.tiling.nextAngleIndex[currentAngleIndex]

		childPath := path
		if w.cfg.debugRecursion {
			childPath = fmt.Sprintf("%s%d", path, angleIndex)
		}
		if w.tessellate(endPoint, reversedAngle, nextAngleIndex, newDirection, childPath) {
			exhausted = true
		}
	}
	return exhausted
}

func (w *walker) edgeIsNew(seg geom.Segment) bool {
	_, exists := w.network[w.edgeHash(seg.A, seg.B)]
	return !exists
}

// clipAgainstBounds classifies seg against the boundary ring and records
// any edge-points the clipping produces. It returns the endpoint the
// caller should draw the main edge to, and whether the recursion must
// stop at this edge rather than continuing past its far endpoint.
func (w *walker) clipAgainstBounds(start, end geom.Point, seg geom.Segment) (geom.Point, bool) {
	if w.bounds.Points == nil {
		return end, false
	}

	cross := w.bounds.Cross(seg)
	switch cross.Kind {
	case geom.RingCrossNone:
		return end, false

	case geom.RingCrossSingle:
		w.edgePoints[w.pointHash(cross.Point)] = cross.Point
		return cross.Point, true

	case geom.RingCrossOverlap:
		closer := cross.Overlap.A
		if start.Distance(cross.Overlap.B) < start.Distance(cross.Overlap.A) {
			closer = cross.Overlap.B
		}
		w.edgePoints[w.pointHash(closer)] = closer
		return closer, true

	default: // geom.RingCrossMultiple
		nearest := geom.ClosestPoint(start, cross.Points)
		w.edgePoints[w.pointHash(nearest)] = nearest
		if w.bounds.Contains(end) {
			// The far endpoint re-enters the interior: the main edge is
			// still truncated at the nearest crossing, but a separate
			// stub is recorded from the crossing nearest the far
			// endpoint back to it, and recursion continues there.
			farthest := geom.ClosestPoint(end, cross.Points)
			w.edgePoints[w.pointHash(farthest)] = farthest
			stub := geom.Segment{A: farthest, B: end}
			w.network[w.edgeHash(stub.A, stub.B)] = stub
			return nearest, false
		}
		return nearest, true
	}
}
