package dbg

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/raycross/geometry"
)

// Colors for debug output. Turn them off when the output isn't a terminal.
var Colors = aurora.NewAurora(true)

func SetColors(enabled bool) {
	Colors = aurora.NewAurora(enabled)
}

func Segment(s geometry.Segment) string {
	return fmt.Sprintf("(%v, %v)-(%v, %v)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// Describe a candidate and what it did to the ray: green if it hit, red if
// it missed.
func Describe(name string, candidate geometry.Segment, hit geometry.Point, ok bool) string {
	if !ok {
		return fmt.Sprintf("%s %s missed", Colors.Red(name), Segment(candidate))
	}
	return fmt.Sprintf("%s %s hit at (%v, %v)", Colors.Green(name), Segment(candidate), hit.X, hit.Y)
}

func DescribeRay(ray geometry.Segment) string {
	return fmt.Sprintf("%s %s", Colors.Cyan("ray"), Segment(ray))
}
