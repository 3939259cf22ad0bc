package jumper

import (
	"errors"
	"log"
	"math"

	"github.com/krisjanis-nesenbergs/garmentwire/garment"
	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/wiregraph"
)

// Result reports the outcome of one Synthesize call.
type Result struct {
	TotalLength float64
	Count       int
}

// Synthesize regenerates every jumper edge in g, first purging any
// jumpers left over from a previous joint radius. For each edge-point on
// a part, it resolves the opposing point on the joint-opposing part and
// connects to every edge-point of that part within radius of it. A
// candidate must also lie within tolerance of the exact opposing segment
// polyline; this rejects edge-points that are merely close to the
// opposing coordinate but live on a different segment of that part.
func Synthesize(g *wiregraph.Graph, gar *garment.Garment, edgePointsByPart [][]geom.Point, radius, precisionTolerance float64) Result {
	g.PurgeJumpers()

	var res Result
	loggedDuplicate := false

	for partID, points := range edgePointsByPart {
		for _, p := range points {
			otherPartID, otherSegmentID, opPoint, err := gar.OpposingPointSegment(partID, p)
			if err != nil {
				if !errors.Is(err, garment.ErrNoSuchSegment) {
					log.Printf("jumper: unexpected error resolving opposing point for part %d: %v", partID, err)
				}
				continue
			}

			opLine := gar.SegmentPolyline(otherPartID, otherSegmentID)

			for _, q := range edgePointsByPart[otherPartID] {
				if q.Distance(opPoint) > radius {
					continue
				}
				if opLine.DistanceToPoint(q) > precisionTolerance {
					continue
				}

				keyP := g.VertexKey(partID, p)
				keyQ := g.VertexKey(otherPartID, q)
				if keyP == keyQ {
					continue
				}
				// Parts live in independent coordinate frames, so the
				// stitched contact's length is measured in the opposing
				// part's frame: from the candidate to the image of p on
				// the opposing segment.
				length := q.Distance(opPoint)

				if err := g.AddJumper(keyP, keyQ, length); err != nil {
					if errors.Is(err, wiregraph.ErrDuplicateEdge) {
						if !loggedDuplicate {
							log.Printf("jumper: duplicate jumper insertion ignored (%v)", err)
							loggedDuplicate = true
						}
						continue
					}
					log.Printf("jumper: unexpected error adding jumper: %v", err)
					continue
				}
				res.Count++
				res.TotalLength += length
			}
		}
	}
	return res
}

// DefaultPrecisionTolerance returns 10^-decimals, the tolerance used to
// decide whether a candidate edge-point truly lies on the resolved
// opposing segment.
func DefaultPrecisionTolerance(decimals int) float64 {
	return math.Pow(10, -float64(decimals))
}
