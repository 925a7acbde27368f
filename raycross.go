// Finds where a ray is first crossed by any of a set of line segments.
//
// Given a reference segment (the ray) and any number of candidate segments,
// this package reports the intersection nearest to the ray's start. Lines
// are compared with a fixed floating-point tolerance; there is no exact
// arithmetic. The geometry package has the building blocks, including a
// streaming reducer for inputs that don't fit in memory.
package raycross

import "github.com/osuushi/raycross/geometry"

type Point = geometry.Point
type Segment = geometry.Segment
type Solver = geometry.Solver

var ErrDegenerateSegment = geometry.ErrDegenerateSegment

// Build a segment, swapping the endpoints if needed so that it starts at the
// smaller x.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return geometry.NewSegment(Point{X: x1, Y: y1}, Point{X: x2, Y: y2})
}

// Take a ray and a list of candidates, and find the crossing nearest to the
// ray's start. The second result is false if no candidate crosses the ray.
//
// Segments whose endpoints coincide are rejected with ErrDegenerateSegment.
func NearestCrossing(ray Segment, candidates ...Segment) (Point, bool, error) {
	return geometry.FoldNearest(ray, geometry.Segments(candidates...))
}
