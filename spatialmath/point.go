// Package spatialmath defines the planar geometry used by the planner: points, bearings,
// straight-line interpolation, circular obstacles and rectangular sampling regions.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// SquaredDistance returns the squared euclidean distance between two points.
func SquaredDistance(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SquaredDistanceToSegment returns the squared distance from p to the closest point of the segment from a to b.
func SquaredDistanceToSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return SquaredDistance(p, a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lengthSq))
	return SquaredDistance(p, a.Add(ab.Mul(t)))
}

// Angle returns the bearing, in radians, of the vector from `from` to `to`.
func Angle(from, to r2.Point) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// DistanceAndAngle returns both the distance and the bearing from `from` to `to`.
func DistanceAndAngle(from, to r2.Point) (float64, float64) {
	d := to.Sub(from)
	return d.Norm(), math.Atan2(d.Y, d.X)
}

// PointAlongBearing returns the point `dist` away from `p` along bearing `theta`.
func PointAlongBearing(p r2.Point, dist, theta float64) r2.Point {
	return r2.Point{X: p.X + dist*math.Cos(theta), Y: p.Y + dist*math.Sin(theta)}
}

// InterpolateStep returns the point `step` along the straight line from `from` to `to`. The result never overshoots `to`.
func InterpolateStep(from, to r2.Point, step float64) r2.Point {
	dist, theta := DistanceAndAngle(from, to)
	if step >= dist {
		return to
	}
	return PointAlongBearing(from, step, theta)
}

// PointAlmostEqual returns whether two points are within epsilon of each other on both axes.
func PointAlmostEqual(a, b r2.Point, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}
