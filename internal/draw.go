package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/raycross/geometry"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const sketchPadding = 40

// Longest side of the drawing, before padding
const sketchSize = 800

// Sketch remembers everything that went through a run so it can be drawn
// afterwards. Only use it for inputs that fit in memory.
type Sketch struct {
	Ray        geometry.Segment
	Candidates []geometry.Segment
	Hits       []geometry.Point
	Best       *geometry.Point
}

func NewSketch(ray geometry.Segment) *Sketch {
	return &Sketch{Ray: ray}
}

func (s *Sketch) Add(candidate geometry.Segment, hit geometry.Point, ok bool) {
	s.Candidates = append(s.Candidates, candidate)
	if ok {
		s.Hits = append(s.Hits, hit)
	}
}

func (s *Sketch) SetBest(p geometry.Point, ok bool) {
	if ok {
		s.Best = &p
	} else {
		s.Best = nil
	}
}

// Render the sketch. The ray is cyan, candidates are grey, hits are yellow
// and the winning point is red.
func (s *Sketch) Render() *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, segment := range append([]geometry.Segment{s.Ray}, s.Candidates...) {
		for _, point := range []geometry.Point{segment.Start, segment.End} {
			minX = math.Min(minX, point.X)
			minY = math.Min(minY, point.Y)
			maxX = math.Max(maxX, point.X)
			maxY = math.Max(maxY, point.Y)
		}
	}

	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = sketchSize / extent
	}

	width := int(scale*(maxX-minX)) + sketchPadding*2
	height := int(scale*(maxY-minY)) + sketchPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(sketchPadding, sketchPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths and radii are in pixels, so undo the scale for them
	px := 1 / scale

	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	for _, candidate := range s.Candidates {
		c.DrawLine(candidate.Start.X, candidate.Start.Y, candidate.End.X, candidate.End.Y)
		c.Stroke()
	}

	c.SetLineWidth(3)
	c.SetRGB(0, 1, 1)
	c.DrawLine(s.Ray.Start.X, s.Ray.Start.Y, s.Ray.End.X, s.Ray.End.Y)
	c.Stroke()
	c.DrawCircle(s.Ray.Start.X, s.Ray.Start.Y, 5*px)
	c.Fill()

	c.SetRGB(1, 1, 0)
	for _, hit := range s.Hits {
		c.DrawCircle(hit.X, hit.Y, 3*px)
		c.Fill()
	}

	if s.Best != nil {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(s.Best.X, s.Best.Y, 6*px)
		c.Fill()
	}
	return c
}

func (s *Sketch) SavePNG(path string) error {
	return errors.Wrapf(s.Render().SavePNG(path), "could not save sketch to %s", path)
}

// Print a saved sketch to the terminal. Only works in iTerm.
func CatPNG(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, "could not print %s", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
