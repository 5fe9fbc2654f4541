package motionplan

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/rrtplan/spatialmath"
	"go.viam.com/rrtplan/utils"
)

// nearestIndex returns the index of the node closest to p. Ties go to the lowest index.
func (t *tree) nearestIndex(p r2.Point) int {
	best := 0
	bestDist := math.Inf(1)
	for i, n := range t.nodes {
		if dist := spatialmath.SquaredDistance(n.point, p); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// nearRadius is the shrinking-ball radius for a tree of n nodes, capped at maxRadius.
func nearRadius(n int, connectCircleDist, maxRadius float64) float64 {
	nodes := float64(n + 1)
	return math.Min(connectCircleDist*math.Sqrt(math.Log(nodes)/nodes), maxRadius)
}

// nearIndices returns, in ascending order, the indices of nodes within the shrinking-ball radius of p.
func (t *tree) nearIndices(p r2.Point, connectCircleDist, maxRadius float64) []int {
	limit := utils.Square(nearRadius(len(t.nodes), connectCircleDist, maxRadius))
	near := []int{}
	for i, n := range t.nodes {
		if spatialmath.SquaredDistance(n.point, p) <= limit {
			near = append(near, i)
		}
	}
	return near
}
