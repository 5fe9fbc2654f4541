package motionplan

import (
	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r2"

	"go.viam.com/rrtplan/spatialmath"
	"go.viam.com/rrtplan/utils"
)

const (
	// Obstacle count at which the collision checker starts using an rtree broad phase.
	obstaclesBeforeIndexing = 16

	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// Extra padding of broad phase query rectangles, since rtreego does not count touching rectangles as intersecting.
	broadPhasePadding = 1e-6
)

// collisionChecker answers whether straight edges keep clear of a fixed set of circular obstacles inflated by the
// robot radius.
type collisionChecker struct {
	obstacles   []spatialmath.Circle
	robotRadius float64
	resolution  float64
	index       *rtreego.Rtree
}

func newCollisionChecker(obstacles []spatialmath.Circle, robotRadius, resolution float64) *collisionChecker {
	cc := &collisionChecker{
		obstacles:   obstacles,
		robotRadius: robotRadius,
		resolution:  resolution,
	}
	if len(obstacles) >= obstaclesBeforeIndexing {
		cc.index = rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
		for _, obs := range obstacles {
			cc.index.Insert(obs)
		}
	}
	return cc
}

// checkCollision returns true if the edge leading to n is collision free. A nil node is never safe.
func (cc *collisionChecker) checkCollision(n *node) bool {
	if n == nil {
		return false
	}
	if len(n.path) == 0 {
		return cc.pathIsSafe([]r2.Point{n.point})
	}
	return cc.pathIsSafe(n.path)
}

// checkSegment returns true if the straight segment from a to b, interpolated at the checker's resolution, is collision
// free.
func (cc *collisionChecker) checkSegment(a, b r2.Point) bool {
	return cc.pathIsSafe(interpolateEdge(a, b, cc.resolution))
}

// pointIsSafe returns true if p lies outside every inflated obstacle.
func (cc *collisionChecker) pointIsSafe(p r2.Point) bool {
	return cc.pathIsSafe([]r2.Point{p})
}

func (cc *collisionChecker) pathIsSafe(path []r2.Point) bool {
	if cc.index == nil {
		for _, obs := range cc.obstacles {
			if !cc.clearOf(obs, path) {
				return false
			}
		}
		return true
	}
	bounds, err := spatialmath.BoundsAround(path, cc.robotRadius+broadPhasePadding)
	if err != nil {
		return false
	}
	for _, candidate := range cc.index.SearchIntersect(bounds) {
		obs, ok := candidate.(spatialmath.Circle)
		if !ok || !cc.clearOf(obs, path) {
			return false
		}
	}
	return true
}

// clearOf returns whether the polyline through path stays strictly farther than the inflated radius from the obstacle
// center. Each segment between consecutive points is measured exactly, so obstacles slipping between interpolation
// points are still caught.
func (cc *collisionChecker) clearOf(obs spatialmath.Circle, path []r2.Point) bool {
	limit := utils.Square(obs.Radius + cc.robotRadius)
	if len(path) == 1 {
		return spatialmath.SquaredDistance(obs.Center, path[0]) > limit
	}
	for i := 1; i < len(path); i++ {
		if spatialmath.SquaredDistanceToSegment(obs.Center, path[i-1], path[i]) <= limit {
			return false
		}
	}
	return true
}
