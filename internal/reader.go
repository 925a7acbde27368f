package internal

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/raycross/geometry"
	"github.com/pkg/errors"
)

var ErrMalformedInput = errors.New("malformed input")

// TextReader reads segments written one per line as "x1,y1 x2,y2". Blank
// lines are skipped. It is a geometry.SegmentSource, and reads lazily, so it
// works on unbounded streams. A malformed line does not poison the reader;
// the next call to Next moves on to the following line.
type TextReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewTextReader(r io.Reader) *TextReader {
	return &TextReader{scanner: bufio.NewScanner(r)}
}

func (r *TextReader) Next() (geometry.Segment, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		segment, err := ParseSegment(text)
		if err != nil {
			return geometry.Segment{}, errors.Wrapf(err, "line %d", r.line)
		}
		return segment, nil
	}
	if err := r.scanner.Err(); err != nil {
		return geometry.Segment{}, errors.Wrap(err, "could not read segments")
	}
	return geometry.Segment{}, io.EOF
}

// 1-based number of the last line read.
func (r *TextReader) Line() int {
	return r.line
}

// Parse a single "x1,y1 x2,y2" segment. The result is canonicalized so that
// its start has the smaller x coordinate.
func ParseSegment(text string) (geometry.Segment, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return geometry.Segment{}, errors.Wrapf(ErrMalformedInput, "expected two points, got %q", text)
	}
	p, err := ParsePoint(fields[0])
	if err != nil {
		return geometry.Segment{}, err
	}
	q, err := ParsePoint(fields[1])
	if err != nil {
		return geometry.Segment{}, err
	}
	return geometry.NewSegment(p, q), nil
}

// Parse an "x,y" pair.
func ParsePoint(text string) (geometry.Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return geometry.Point{}, errors.Wrapf(ErrMalformedInput, "invalid point %q", text)
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid x value in %q", text)
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid y value in %q", text)
	}
	return geometry.Point{X: x, Y: y}, nil
}

func parseCoordinate(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedInput, "%q is not a number", text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrMalformedInput, "%q is not finite", text)
	}
	return v, nil
}

// A pre-parsed sequence of segments and per-segment errors, for formats that
// have to be read in full before any segment is known.
type parsedSource struct {
	items []parsedItem
}

type parsedItem struct {
	segment geometry.Segment
	err     error
}

func (s *parsedSource) add(segment geometry.Segment) {
	s.items = append(s.items, parsedItem{segment: segment})
}

func (s *parsedSource) fail(err error) {
	s.items = append(s.items, parsedItem{err: err})
}

func (s *parsedSource) Next() (geometry.Segment, error) {
	if len(s.items) == 0 {
		return geometry.Segment{}, io.EOF
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item.segment, item.err
}

// Segments between consecutive vertices.
func (s *parsedSource) addPath(points []geometry.Point) {
	for i := 1; i < len(points); i++ {
		s.add(geometry.NewSegment(points[i-1], points[i]))
	}
}
