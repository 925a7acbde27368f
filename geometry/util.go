package geometry

import "math"

// Default tolerance for deciding whether two lines are parallel or
// coincident.
const DefaultTolerance = 1e-8

// Closed interval membership. The bounds may be given in either order.
func InRange(low, mid, high float64) bool {
	return math.Min(low, high) <= mid && mid <= math.Max(low, high)
}

// Like InRange, but the interval is widened by tol on both ends.
func InRangeTol(low, mid, high, tol float64) bool {
	return math.Min(low, high)-tol <= mid && mid <= math.Max(low, high)+tol
}

func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Returns whichever of a and b is closer to anchor. On a tie, b wins. The
// reducer passes the newest hit as b, so ties go to the later candidate.
func Nearer(anchor, a, b Point) Point {
	if Distance(anchor, a) < Distance(anchor, b) {
		return a
	}
	return b
}
