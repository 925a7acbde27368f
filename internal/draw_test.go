package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/raycross/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSketch(t *testing.T) {
	sketch := NewSketch(seg(0, 0, 10, 0))
	sketch.Add(seg(5, -1, 5, 1), geometry.Point{X: 5}, true)
	sketch.Add(seg(0, 1, 10, 1), geometry.Point{}, false)
	sketch.SetBest(geometry.Point{X: 5}, true)

	assert.Len(t, sketch.Candidates, 2)
	assert.Len(t, sketch.Hits, 1)
	require.NotNil(t, sketch.Best)

	c := sketch.Render()
	// 10 units wide scaled to the full size, 2 units tall
	assert.Equal(t, sketchSize+2*sketchPadding, c.Width())
	assert.Equal(t, sketchSize/5+2*sketchPadding, c.Height())

	path := filepath.Join(t.TempDir(), "sketch.png")
	require.NoError(t, sketch.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	sketch.SetBest(geometry.Point{}, false)
	assert.Nil(t, sketch.Best)
}

func TestSketchSinglePoint(t *testing.T) {
	// Nothing has any extent; rendering must not divide by zero
	sketch := NewSketch(seg(3, 3, 3, 3))
	c := sketch.Render()
	assert.Equal(t, 2*sketchPadding, c.Width())
}
