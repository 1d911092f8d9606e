package analyze

import "math"

// Point represents a single sample of a curve.
type Point struct {
	X float64
	Y float64
}

// Peak returns the first point with the greatest Y and its index.
// A later point must be strictly greater to replace the current best, so
// ties go to the smallest index. Empty input returns index -1.
func Peak(points []Point) (Point, int) {
	best := -1
	maxY := math.Inf(-1)

	for i, p := range points {
		if p.Y > maxY {
			maxY = p.Y
			best = i
		}
	}

	if best < 0 {
		return Point{}, -1
	}
	return points[best], best
}

// Unimodal reports whether the curve climbs to a single peak and then
// falls. Dips smaller than tol are treated as flat.
func Unimodal(points []Point, tol float64) bool {
	falling := false
	for i := 1; i < len(points); i++ {
		delta := points[i].Y - points[i-1].Y
		switch {
		case delta > tol:
			if falling {
				return false
			}
		case delta < -tol:
			falling = true
		}
	}
	return true
}

// Confidence returns a value between 0 and 1 representing how well the
// curve matches a rise-then-fall shape around its peak.
func Confidence(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	_, peak := Peak(points)

	violations := 0
	for i := 1; i < len(points); i++ {
		if i <= peak && points[i].Y < points[i-1].Y {
			violations++
		}
		if i > peak && points[i].Y > points[i-1].Y {
			violations++
		}
	}
	return math.Max(0, 1.0-float64(violations)/float64(len(points)-1))
}
