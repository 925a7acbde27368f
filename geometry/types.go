package geometry

type Point struct {
	X float64
	Y float64
}

// Segments are always stored with Start.X <= End.X. The directional checks in
// the solver depend on this, so build them with NewSegment unless you already
// know the endpoints are in order.
type Segment struct {
	Start Point
	End   Point
}

// Implicit line A*x + B*y + C = 0, with (A, B) a unit normal.
type Line struct {
	A, B, C float64
}

func NewSegment(p, q Point) Segment {
	if p.X > q.X {
		p, q = q, p
	}
	return Segment{Start: p, End: q}
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}
