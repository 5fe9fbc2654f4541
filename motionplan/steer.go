package motionplan

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/rrtplan/spatialmath"
)

// steer builds a node at most maxDist from `from` in the direction of `to`, together with the interpolated edge
// leading to it. Its cost is the cost of `from` plus the edge length. No collision checking is done here.
func (mp *RRTStarMotionPlanner) steer(fromIdx int, from *node, to r2.Point, maxDist float64) *node {
	dist, theta := spatialmath.DistanceAndAngle(from.point, to)
	target := to
	if dist > maxDist {
		target = spatialmath.PointAlongBearing(from.point, maxDist, theta)
	}
	return &node{
		point:  target,
		path:   interpolateEdge(from.point, target, mp.opts.PathResolution),
		parent: fromIdx,
		cost:   from.cost + spatialmath.Distance(from.point, target),
	}
}

// interpolateEdge returns points from a to b spaced by resolution. Both ends are included and b is always last.
func interpolateEdge(a, b r2.Point, resolution float64) []r2.Point {
	dist, theta := spatialmath.DistanceAndAngle(a, b)
	steps := int(math.Floor(dist / resolution))
	path := make([]r2.Point, 0, steps+2)
	path = append(path, a)
	for i := 1; i <= steps; i++ {
		along := float64(i) * resolution
		if along >= dist {
			break
		}
		path = append(path, spatialmath.PointAlongBearing(a, along, theta))
	}
	return append(path, b)
}
