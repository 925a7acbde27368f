package internal

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/raycross/geometry"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It walks the document in order and collects
// <line> elements, and <polyline> elements as one segment per pair of
// consecutive points. Transforms and everything else are ignored.
func ReadSVG(r io.Reader) (geometry.SegmentSource, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}
	source := &parsedSource{}
	walkSVG(root, source)
	return source, nil
}

func walkSVG(el *svgparser.Element, source *parsedSource) {
	switch el.Name {
	case "line":
		segment, err := svgLine(el)
		if err != nil {
			source.fail(err)
		} else {
			source.add(segment)
		}
	case "polyline":
		points, err := svgPoints(el.Attributes["points"])
		if err != nil {
			source.fail(err)
		} else {
			source.addPath(points)
		}
	}
	for _, child := range el.Children {
		walkSVG(child, source)
	}
}

func svgLine(el *svgparser.Element) (geometry.Segment, error) {
	var coords [4]float64
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		value, ok := el.Attributes[name]
		if !ok {
			// Missing coordinates default to zero in SVG
			continue
		}
		v, err := parseCoordinate(value)
		if err != nil {
			return geometry.Segment{}, errors.Wrapf(err, "<line> attribute %s", name)
		}
		coords[i] = v
	}
	return geometry.NewSegment(
		geometry.Point{X: coords[0], Y: coords[1]},
		geometry.Point{X: coords[2], Y: coords[3]},
	), nil
}

// Parse an SVG points list, e.g. "0,0 10,0 10,5". Commas and whitespace are
// interchangeable separators.
func svgPoints(text string) ([]geometry.Point, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 || len(fields) < 4 {
		return nil, errors.Wrapf(ErrMalformedInput, "<polyline> needs at least two points, got %q", text)
	}
	points := make([]geometry.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, errors.Wrap(err, "<polyline> points")
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, errors.Wrap(err, "<polyline> points")
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points, nil
}
