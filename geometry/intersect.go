package geometry

import "math"

// Solver holds the numeric settings for intersection tests. The zero value is
// not useful; start from DefaultSolver.
type Solver struct {
	// Lines whose normals' cross product is below this are parallel, and
	// parallel lines whose offsets differ by less than this are coincident.
	Tolerance float64
	// When set, bounds and direction checks also accept points up to
	// Tolerance outside the segments. By default those checks are exact.
	WidenBounds bool
}

func DefaultSolver() Solver {
	return Solver{Tolerance: DefaultTolerance}
}

// Intersect using DefaultSolver.
func Intersect(ray, candidate Segment) (Point, bool, error) {
	return DefaultSolver().Intersect(ray, candidate)
}

// Intersect finds where candidate meets ray. The second result is false when
// they do not meet within their finite extents.
//
// When the two segments lie on the same line, the result is a representative
// point rather than the overlap: the ray's start if it lies inside the
// candidate, otherwise the candidate endpoint nearest to the ray's start,
// provided the candidate does not start strictly behind the ray. Overlaps
// that satisfy neither condition are not reported.
func (s Solver) Intersect(ray, candidate Segment) (Point, bool, error) {
	l1, err := MakeLine(ray)
	if err != nil {
		return Point{}, false, err
	}
	l2, err := MakeLine(candidate)
	if err != nil {
		return Point{}, false, err
	}

	denom := l1.A*l2.B - l2.A*l1.B
	if math.Abs(denom) < s.Tolerance {
		if math.Abs(l1.C-l2.C) >= s.Tolerance {
			// Parallel, distinct lines
			return Point{}, false, nil
		}
		return s.collinear(ray, candidate)
	}

	p := Point{
		X: (l1.B*l2.C - l2.B*l1.C) / denom,
		Y: (l2.A*l1.C - l1.A*l2.C) / denom,
	}
	if s.inRange(ray.Start.X, p.X, ray.End.X) &&
		s.ahead(ray, p) &&
		s.inBox(candidate, p) {
		return p, true, nil
	}
	return Point{}, false, nil
}

func (s Solver) collinear(ray, candidate Segment) (Point, bool, error) {
	if s.inBox(candidate, ray.Start) {
		return ray.Start, true, nil
	}
	if s.ahead(ray, candidate.Start) {
		return Nearer(ray.Start, candidate.Start, candidate.End), true, nil
	}
	return Point{}, false, nil
}

// Is p on the End side of the ray's Start (or level with it) on both axes?
func (s Solver) ahead(ray Segment, p Point) bool {
	return s.nonNegative((ray.Start.X-ray.End.X)*(ray.Start.X-p.X)) &&
		s.nonNegative((ray.Start.Y-ray.End.Y)*(ray.Start.Y-p.Y))
}

func (s Solver) inBox(seg Segment, p Point) bool {
	return s.inRange(seg.Start.X, p.X, seg.End.X) && s.inRange(seg.Start.Y, p.Y, seg.End.Y)
}

func (s Solver) inRange(low, mid, high float64) bool {
	if s.WidenBounds {
		return InRangeTol(low, mid, high, s.Tolerance)
	}
	return InRange(low, mid, high)
}

func (s Solver) nonNegative(v float64) bool {
	if s.WidenBounds {
		return v >= -s.Tolerance
	}
	return v >= 0
}
