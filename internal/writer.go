package internal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/osuushi/raycross/geometry"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	FormatText    = "text"
	FormatSVG     = "svg"
	FormatGeoJSON = "geojson"
)

// Open a segment source for the given input format.
func OpenSource(r io.Reader, format string) (geometry.SegmentSource, error) {
	switch format {
	case FormatText, "":
		return NewTextReader(r), nil
	case FormatSVG:
		return ReadSVG(r)
	case FormatGeoJSON:
		return ReadGeoJSON(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Write the result in the given output format. Text output is "x y" on one
// line, or nothing at all when there is no point.
func WriteResult(w io.Writer, format string, p geometry.Point, ok bool) error {
	switch format {
	case FormatText, "":
		return WriteText(w, p, ok)
	case FormatGeoJSON:
		return WriteGeoJSON(w, p, ok)
	}
	return errors.Errorf("unknown output format %q", format)
}

func WriteText(w io.Writer, p geometry.Point, ok bool) error {
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s %s\n", FormatCoordinate(p.X), FormatCoordinate(p.Y))
	return errors.Wrap(err, "could not write result")
}

// A FeatureCollection holding the point, or empty.
func WriteGeoJSON(w io.Writer, p geometry.Point, ok bool) error {
	fc := geojson.NewFeatureCollection()
	if ok {
		feature := geojson.NewFeature(orb.Point{positiveZero(p.X), positiveZero(p.Y)})
		fc.Append(feature)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "could not encode result")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return errors.Wrap(err, "could not write result")
}

// Shortest decimal form that round trips. Negative zero prints as "0".
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(positiveZero(v), 'f', -1, 64)
}

// The solver produces -0 on some axis aligned input.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
