// Package geom provides the minimal 2D geometry kernel the tessellator and
// garment model are built on: points, line segments, polygons (closed
// rings), and polylines.
//
//   - Point/Segment: coordinates and ordered pairs in millimetres.
//   - Polygon: an ordered, implicitly-closed ring with point-in-polygon and
//     area queries, plus classification of how a candidate segment crosses
//     the ring boundary (none, a single point, a coincident overlap, or
//     several crossings).
//   - Polyline: a connected chain of points supporting normalized
//     projection/interpolation the way a single segment does.
//
// All floating-point comparisons that decide topology (containment,
// overlap) use small fixed tolerances; nothing here rounds coordinates
// for identity — that is the sole responsibility of the vertex-keying
// scheme in package wiregraph.
package geom
