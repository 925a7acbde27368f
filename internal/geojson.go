package internal

import (
	"io"

	"github.com/osuushi/raycross/geometry"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Read segments from a GeoJSON FeatureCollection. LineString and
// MultiLineString features contribute one segment per pair of consecutive
// vertices, in feature order. Any other geometry is reported as malformed in
// its place in the sequence.
func ReadGeoJSON(r io.Reader) (geometry.SegmentSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse geojson")
	}

	source := &parsedSource{}
	for i, feature := range fc.Features {
		switch g := feature.Geometry.(type) {
		case orb.LineString:
			addLineString(source, i, g)
		case orb.MultiLineString:
			for _, ls := range g {
				addLineString(source, i, ls)
			}
		case nil:
			source.fail(errors.Wrapf(ErrMalformedInput, "feature %d has no geometry", i))
		default:
			source.fail(errors.Wrapf(ErrMalformedInput, "feature %d: unsupported geometry %s", i, g.GeoJSONType()))
		}
	}
	return source, nil
}

func addLineString(source *parsedSource, feature int, ls orb.LineString) {
	if len(ls) < 2 {
		source.fail(errors.Wrapf(ErrMalformedInput, "feature %d: line string needs at least two points", feature))
		return
	}
	points := make([]geometry.Point, len(ls))
	for i, p := range ls {
		points[i] = geometry.Point{X: p.X(), Y: p.Y()}
	}
	source.addPath(points)
}
