package clothing

import "github.com/krisjanis-nesenbergs/garmentwire/geom"

// Segment names a sub-range of a Part's outline, as a pair of point
// indices into Part.Points. Start may exceed End, in which case the
// segment wraps around through the end of Points and back to index 0.
type Segment struct {
	Start, End int
}

// Part is one cutout piece of a garment: an ordered, implicitly-closed
// outline and the named segments joints reference.
type Part struct {
	Name     string
	Points   []geom.Point
	Segments []Segment
}

// Outline returns the part's outline as a polygon.
func (p Part) Outline() geom.Polygon {
	return geom.Polygon{Points: p.Points}
}

// SegmentPolyline returns the polyline traced by the point range the
// given segment names, honouring the wrap-around convention when
// Start > End. Returns an empty polyline if segmentID is out of range.
func (p Part) SegmentPolyline(segmentID int) geom.Polyline {
	if segmentID < 0 || segmentID >= len(p.Segments) {
		return geom.Polyline{}
	}
	seg := p.Segments[segmentID]
	n := len(p.Points)
	if n == 0 {
		return geom.Polyline{}
	}

	var pts []geom.Point
	if seg.Start > seg.End {
		pts = append(pts, p.Points[seg.Start:]...)
		pts = append(pts, p.Points[:seg.End+1]...)
	} else {
		pts = append(pts, p.Points[seg.Start:seg.End+1]...)
	}
	return geom.Polyline{Points: pts}
}

// Joint is a seam between one named segment of one part and one named
// segment of another. Inverted, when true, means the two segments'
// parametric positions run in opposite directions: position t on one
// side maps to 1-t on the other.
type Joint struct {
	PartA, SegmentA int
	PartB, SegmentB int
	Inverted        bool
}

// opposing returns the other side of the joint given one (partID,
// segmentID) endpoint, and whether it matched either side at all.
func (j Joint) opposing(partID, segmentID int) (otherPart, otherSegment int, ok bool) {
	switch {
	case j.PartA == partID && j.SegmentA == segmentID:
		return j.PartB, j.SegmentB, true
	case j.PartB == partID && j.SegmentB == segmentID:
		return j.PartA, j.SegmentA, true
	default:
		return 0, 0, false
	}
}

// Item is a complete garment: its parts and the joints seaming them.
type Item struct {
	Name   string
	Parts  []Part
	Joints []Joint
}

// FindJoints returns every joint that references the given (partID,
// segmentID) as one of its two sides. There is no uniqueness constraint
// on joint membership here; package garment warns on the ambiguity since
// it is the first caller that actually requires a unique owner.
func (it Item) FindJoints(partID, segmentID int) []Joint {
	var out []Joint
	for _, j := range it.Joints {
		if _, _, ok := j.opposing(partID, segmentID); ok {
			out = append(out, j)
		}
	}
	return out
}

// Opposing resolves the (part, segment) on the other side of the unique
// joint owning (partID, segmentID), and whether the joint is inverted.
// ok is false if no joint references that segment.
func (it Item) Opposing(partID, segmentID int) (otherPart, otherSegment int, inverted, ok bool) {
	joints := it.FindJoints(partID, segmentID)
	if len(joints) == 0 {
		return 0, 0, false, false
	}
	// Last-match-wins when a segment ambiguously participates in more
	// than one joint; callers (package garment) log a warning in that
	// case.
	j := joints[len(joints)-1]
	otherPart, otherSegment, _ = j.opposing(partID, segmentID)
	return otherPart, otherSegment, j.Inverted, true
}
