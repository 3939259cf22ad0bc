package garment

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/krisjanis-nesenbergs/garmentwire/clothing"
	"github.com/krisjanis-nesenbergs/garmentwire/config"
	"github.com/krisjanis-nesenbergs/garmentwire/geom"
)

// Sink is the randomly chosen reference point routing distances are
// measured from.
type Sink struct {
	PartID int
	Point  geom.Point
}

// Seed is a part's generation seed for the tessellator: an interior point
// plus an initial direction in degrees.
type Seed struct {
	PartID int
	Point  geom.Point
	Angle  float64
}

// Garment is the size/sex-adjusted geometric model of one clothing item.
type Garment struct {
	ClothingID string
	Item       clothing.Item
	Size       string
	Sex        config.Sex
	Ratio      float64

	sink  Sink
	seeds []Seed

	precisionDecimals int
	tolerance         float64
	rng               *rand.Rand
	verbose           bool

	adjustedBounds []geom.Polygon
	partArea       []float64
	segmentLines   [][]geom.Polyline
}

// New builds an adjusted garment model for item, scaling every part's
// outline by size_factor[size][sex] * mm_per_unit.
func New(clothingID string, item clothing.Item, opts ...Option) (*Garment, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	sex := resolveSex(item, s)

	ratio, err := config.SizeRatio(s.size, sex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSize, err)
	}

	g := &Garment{
		ClothingID:        clothingID,
		Item:              item,
		Size:              s.size,
		Sex:               sex,
		Ratio:             ratio,
		precisionDecimals: s.precisionDecimals,
		tolerance:         math.Pow(10, -float64(s.precisionDecimals)),
		rng:               s.rng,
		verbose:           s.verbose,
	}

	if s.sink != nil {
		g.sink = *s.sink
	} else {
		g.GenerateSinkLocation()
	}

	if s.seeds != nil {
		g.seeds = s.seeds
	} else {
		g.GenerateSeeds()
	}

	return g, nil
}

func resolveSex(item clothing.Item, s settings) config.Sex {
	if s.sex != nil {
		return config.Sex(*s.sex)
	}
	if len(item.Name) > 2 {
		candidate := config.Sex(item.Name[2:3])
		if candidate == config.Male || candidate == config.Female {
			return candidate
		}
	}
	log.Printf("garment: could not determine sex from name %q, defaulting to Male", item.Name)
	return config.Male
}

// PartCount returns the number of parts in the garment.
func (g *Garment) PartCount() int {
	return len(g.Item.Parts)
}

// AdjustedPartBounds returns partID's outline scaled by Ratio, computing
// and caching every part's scaled outline on first use.
func (g *Garment) AdjustedPartBounds(partID int) geom.Polygon {
	if g.adjustedBounds == nil {
		g.adjustedBounds = make([]geom.Polygon, g.PartCount())
		for pid, part := range g.Item.Parts {
			pts := make([]geom.Point, len(part.Points))
			for i, p := range part.Points {
				pts[i] = p.Scale(g.Ratio)
			}
			g.adjustedBounds[pid] = geom.Polygon{Points: pts}
		}
	}
	return g.adjustedBounds[partID]
}

// PartArea returns the cached scaled area of partID.
func (g *Garment) PartArea(partID int) float64 {
	g.ensurePartAreas()
	return g.partArea[partID]
}

func (g *Garment) ensurePartAreas() {
	if g.partArea != nil {
		return
	}
	g.partArea = make([]float64, g.PartCount())
	for pid := range g.Item.Parts {
		g.partArea[pid] = g.AdjustedPartBounds(pid).Area()
	}
}

// proportionalRandomPart picks a part index with probability proportional
// to its scaled area.
func (g *Garment) proportionalRandomPart() int {
	g.ensurePartAreas()
	var total float64
	for _, a := range g.partArea {
		total += a
	}
	target := g.rng.Float64() * total
	var cumulative float64
	for i, a := range g.partArea {
		cumulative += a
		if target <= cumulative {
			return i
		}
	}
	return len(g.partArea) - 1
}

// randomPointInShell samples a point uniformly by rejection inside the
// polygon's axis-aligned bounding box, rounding to three decimals.
func (g *Garment) randomPointInShell(poly geom.Polygon) geom.Point {
	_, _, maxX, maxY := poly.Bounds()
	for {
		x := roundTo(g.rng.Float64()*maxX, 3)
		y := roundTo(g.rng.Float64()*maxY, 3)
		p := geom.Point{X: x, Y: y}
		if poly.Contains(p) {
			return p
		}
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// RandomPoint samples one point, choosing its owning part proportionally
// to scaled area.
func (g *Garment) RandomPoint() (partID int, point geom.Point) {
	partID = g.proportionalRandomPart()
	point = g.randomPointInShell(g.AdjustedPartBounds(partID))
	return partID, point
}

// GenerateSinkLocation samples a new sink, replacing the current one.
func (g *Garment) GenerateSinkLocation() {
	partID, pt := g.RandomPoint()
	g.sink = Sink{PartID: partID, Point: pt}
}

// GenerateSeeds samples a new interior point plus direction for every
// part, replacing the current seed set.
func (g *Garment) GenerateSeeds() {
	seeds := make([]Seed, g.PartCount())
	for pid := 0; pid < g.PartCount(); pid++ {
		pt := g.randomPointInShell(g.AdjustedPartBounds(pid))
		seeds[pid] = Seed{PartID: pid, Point: pt, Angle: float64(g.rng.Intn(360))}
	}
	g.seeds = seeds
}

// RegenerateSinkAndSeeds resamples both the sink and every part's seed.
// Used by the experiment's graph-inconsistency retry loop.
func (g *Garment) RegenerateSinkAndSeeds() {
	g.GenerateSinkLocation()
	g.GenerateSeeds()
}

// Sink returns the current sink.
func (g *Garment) Sink() Sink { return g.sink }

// Seeds returns the current per-part seed set.
func (g *Garment) Seeds() []Seed { return g.seeds }

// ensureSegmentLines lazily builds, per part, the polyline traced by each
// named segment over the part's adjusted outline.
func (g *Garment) ensureSegmentLines() {
	if g.segmentLines != nil {
		return
	}
	g.segmentLines = make([][]geom.Polyline, g.PartCount())
	for pid, part := range g.Item.Parts {
		bounds := g.AdjustedPartBounds(pid)
		lines := make([]geom.Polyline, len(part.Segments))
		for sid := range part.Segments {
			lines[sid] = segmentPolylineOf(bounds, part.Segments[sid])
		}
		g.segmentLines[pid] = lines
	}
}

func segmentPolylineOf(bounds geom.Polygon, seg clothing.Segment) geom.Polyline {
	var pts []geom.Point
	if seg.Start > seg.End {
		pts = append(pts, bounds.Points[seg.Start:]...)
		pts = append(pts, bounds.Points[:seg.End+1]...)
	} else {
		pts = append(pts, bounds.Points[seg.Start:seg.End+1]...)
	}
	return geom.Polyline{Points: pts}
}

// LocalSegment finds the segment of partID closest to point and returns
// its index and the point's normalized parametric position along it.
// Returns ErrNoSuchSegment if the closest segment is farther than the
// configured precision tolerance.
func (g *Garment) LocalSegment(partID int, point geom.Point) (segmentID int, relativeT float64, err error) {
	g.ensureSegmentLines()
	lines := g.segmentLines[partID]

	minDist := math.Inf(1)
	minIndex := -1
	for i, line := range lines {
		d := line.DistanceToPoint(point)
		if d < minDist {
			minDist = d
			minIndex = i
		}
	}
	if minIndex == -1 || minDist > g.tolerance {
		return 0, 0, fmt.Errorf("%w: part %d", ErrNoSuchSegment, partID)
	}
	return minIndex, lines[minIndex].Project(point), nil
}

// OpposingPoint resolves the point on the opposing side of the joint
// owning (partID, point)'s nearest segment: it locates the local segment,
// looks up the unique joint referencing it, and interpolates the
// opposing segment's polyline at the corresponding parametric position
// (1-t when the joint is inverted).
func (g *Garment) OpposingPoint(partID int, point geom.Point) (otherPartID int, otherPoint geom.Point, err error) {
	otherPartID, _, otherPoint, err = g.OpposingPointSegment(partID, point)
	return otherPartID, otherPoint, err
}

// OpposingPointSegment is OpposingPoint but additionally returns the
// opposing segment's index, so callers (package jumper) can measure a
// candidate's distance to the exact segment polyline the opposing point
// lies on, matching get_opposing_point_coordinates's third return value.
func (g *Garment) OpposingPointSegment(partID int, point geom.Point) (otherPartID, otherSegmentID int, otherPoint geom.Point, err error) {
	g.ensureSegmentLines()

	segmentID, t, err := g.LocalSegment(partID, point)
	if err != nil {
		return 0, 0, geom.Point{}, err
	}

	if joints := g.Item.FindJoints(partID, segmentID); g.verbose && len(joints) > 1 {
		log.Printf("garment: segment %d of part %d participates in %d joints; using the last one", segmentID, partID, len(joints))
	}

	otherPartID, otherSegmentID, inverted, ok := g.Item.Opposing(partID, segmentID)
	if !ok {
		return 0, 0, geom.Point{}, fmt.Errorf("%w: segment %d of part %d has no joint", ErrNoSuchSegment, segmentID, partID)
	}

	otherLine := g.segmentLines[otherPartID][otherSegmentID]
	if inverted {
		t = 1 - t
	}
	return otherPartID, otherSegmentID, otherLine.Interpolate(t), nil
}

// SegmentPolyline returns the polyline traced by the named segment of
// partID over its adjusted outline.
func (g *Garment) SegmentPolyline(partID, segmentID int) geom.Polyline {
	g.ensureSegmentLines()
	return g.segmentLines[partID][segmentID]
}
