package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var ErrDegenerateSegment = errors.New("degenerate segment")

// Convert a segment to its normalized implicit line. A zero length segment has
// no direction, so it yields ErrDegenerateSegment rather than NaN
// coefficients.
func MakeLine(s Segment) (Line, error) {
	a := s.Start.Y - s.End.Y
	b := s.End.X - s.Start.X
	c := s.Start.X*s.End.Y - s.End.X*s.Start.Y
	norm := math.Sqrt(a*a + b*b)
	if norm == 0 {
		return Line{}, errors.Wrapf(ErrDegenerateSegment, "zero length segment at (%v, %v)", s.Start.X, s.Start.Y)
	}
	return Line{A: a / norm, B: b / norm, C: c / norm}, nil
}

// Signed distance from p to the line. Zero for points on the line.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}
