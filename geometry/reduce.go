package geometry

import (
	"io"

	"github.com/pkg/errors"
)

// A SegmentSource hands out candidate segments one at a time. Next returns
// io.EOF once there are no more. Sources may be unbounded; nothing is
// buffered beyond the segment being returned.
type SegmentSource interface {
	Next() (Segment, error)
}

type sliceSource struct {
	segments []Segment
}

// In-memory SegmentSource over the given segments, in order.
func Segments(segments ...Segment) SegmentSource {
	return &sliceSource{segments: segments}
}

func (s *sliceSource) Next() (Segment, error) {
	if len(s.segments) == 0 {
		return Segment{}, io.EOF
	}
	seg := s.segments[0]
	s.segments = s.segments[1:]
	return seg, nil
}

// Reducer keeps the hit nearest to the ray's start across any number of
// candidates.
type Reducer struct {
	Ray    Segment
	Solver Solver

	best    Point
	hasBest bool
	count   int
	hits    int
}

func NewReducer(ray Segment, solver Solver) *Reducer {
	return &Reducer{Ray: ray, Solver: solver}
}

// Add tests one candidate against the ray and folds in any hit. It returns
// the candidate's own hit, not the running best. A candidate that errors
// leaves the best point untouched.
func (r *Reducer) Add(candidate Segment) (Point, bool, error) {
	r.count++
	p, ok, err := r.Solver.Intersect(r.Ray, candidate)
	if err != nil || !ok {
		return p, ok, err
	}
	r.hits++
	if !r.hasBest {
		r.best = p
		r.hasBest = true
	} else {
		r.best = Nearer(r.Ray.Start, r.best, p)
	}
	return p, true, nil
}

func (r *Reducer) Best() (Point, bool) {
	return r.best, r.hasBest
}

// Number of candidates passed to Add, including ones that errored.
func (r *Reducer) Count() int {
	return r.count
}

// Number of candidates that hit the ray.
func (r *Reducer) Hits() int {
	return r.hits
}

// FoldNearest using DefaultSolver.
func FoldNearest(ray Segment, source SegmentSource) (Point, bool, error) {
	return DefaultSolver().FoldNearest(ray, source)
}

// Drain source and return the hit nearest to ray.Start. Every candidate is
// read, since any of them could beat the current best. The first error from
// the source or the solver stops the fold.
func (s Solver) FoldNearest(ray Segment, source SegmentSource) (Point, bool, error) {
	if _, err := MakeLine(ray); err != nil {
		return Point{}, false, errors.Wrap(err, "invalid ray")
	}
	reducer := NewReducer(ray, s)
	for {
		candidate, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Point{}, false, err
		}
		if _, _, err := reducer.Add(candidate); err != nil {
			return Point{}, false, errors.Wrapf(err, "candidate %d", reducer.Count())
		}
	}
	p, ok := reducer.Best()
	return p, ok, nil
}
