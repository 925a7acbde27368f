package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	testCases := []struct {
		name           string
		low, mid, high float64
		expected       bool
	}{
		{"Inside", 0, 5, 10, true},
		{"Low edge", 0, 0, 10, true},
		{"High edge", 0, 10, 10, true},
		{"Below", 0, -1, 10, false},
		{"Above", 0, 10.5, 10, false},
		{"Point interval", 3, 3, 3, true},
		{"Negative", -7, -3, -1, true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InRange(tc.low, tc.mid, tc.high))
			// Bound order never matters
			assert.Equal(t, tc.expected, InRange(tc.high, tc.mid, tc.low))
		})
	}
}

func TestInRangeTol(t *testing.T) {
	assert.False(t, InRange(0, 10+1e-9, 10))
	assert.True(t, InRangeTol(0, 10+1e-9, 10, 1e-8))
	assert.True(t, InRangeTol(10, -1e-9, 0, 1e-8))
	assert.False(t, InRangeTol(0, 10+1e-7, 10, 1e-8))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 5.0, Distance(Point{3, 4}, Point{0, 0}))
	assert.Equal(t, 0.0, Distance(Point{1, 1}, Point{1, 1}))
}

func TestNearer(t *testing.T) {
	anchor := Point{0, 0}
	near := Point{1, 0}
	far := Point{0, 2}

	assert.Equal(t, near, Nearer(anchor, near, far))
	assert.Equal(t, near, Nearer(anchor, far, near))

	t.Run("ties go to the second point", func(t *testing.T) {
		a := Point{3, 4}
		b := Point{-4, 3}
		assert.Equal(t, Distance(anchor, a), Distance(anchor, b))
		assert.Equal(t, b, Nearer(anchor, a, b))
		assert.Equal(t, a, Nearer(anchor, b, a))
	})
}

func TestNewSegment(t *testing.T) {
	p := Point{5, 1}
	q := Point{-2, 7}
	s := NewSegment(p, q)
	assert.Equal(t, q, s.Start)
	assert.Equal(t, p, s.End)
	assert.Equal(t, s, NewSegment(q, p))

	// Equal X keeps the given order
	s = NewSegment(Point{1, 9}, Point{1, -9})
	assert.Equal(t, Point{1, 9}, s.Start)
	assert.True(t, s.IsVertical())
	assert.False(t, s.IsDegenerate())
	assert.True(t, NewSegment(Point{2, 2}, Point{2, 2}).IsDegenerate())
}

// Helpers

func seg(x0, y0, x1, y1 float64) Segment {
	return NewSegment(Point{x0, y0}, Point{x1, y1})
}

func assertPointInDelta(t *testing.T, expected, actual Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
}

func unitNormal(l Line) float64 {
	return math.Sqrt(l.A*l.A + l.B*l.B)
}
