package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeLine(t *testing.T) {
	segments := []Segment{
		seg(0, 0, 10, 0),
		seg(5, -5, 5, 5),
		seg(-3, 2, 7, -11),
		seg(1e6, 1e6, 1e6+1, 1e6+3),
		seg(0.001, 0.002, 0.003, 0.001),
	}
	for _, s := range segments {
		line, err := MakeLine(s)
		require.NoError(t, err)
		assert.InDelta(t, 1, unitNormal(line), 1e-12, "normal of %v", s)
		assert.InDelta(t, 0, line.Eval(s.Start), 1e-6, "start of %v", s)
		assert.InDelta(t, 0, line.Eval(s.End), 1e-6, "end of %v", s)
	}
}

func TestMakeLineCoefficients(t *testing.T) {
	line, err := MakeLine(seg(0, 0, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, Line{A: 0, B: 1, C: 0}, line)

	line, err = MakeLine(seg(5, -5, 5, 5))
	require.NoError(t, err)
	assert.Equal(t, Line{A: -1, B: 0, C: 5}, line)

	// Eval is a signed distance
	assert.InDelta(t, 3, line.Eval(Point{2, 100}), 1e-12)
	assert.InDelta(t, -3, line.Eval(Point{8, 100}), 1e-12)
}

func TestMakeLineDegenerate(t *testing.T) {
	line, err := MakeLine(seg(4, 2, 4, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateSegment))
	assert.Equal(t, Line{}, line)
	assert.False(t, math.IsNaN(line.A) || math.IsNaN(line.B) || math.IsNaN(line.C))
}
