package motionplan

import (
	"github.com/golang/geo/r2"

	"go.viam.com/rrtplan/spatialmath"
	"go.viam.com/rrtplan/utils"
)

// noParent marks the root of a tree.
const noParent = -1

// node is a single vertex of the search tree. Parents are referenced by their index in the tree so that a rewired
// slot keeps its children attached.
type node struct {
	point r2.Point
	// interpolated straight edge from the parent's point to this point, both ends included
	path   []r2.Point
	parent int
	cost   float64
}

func newRootNode(p r2.Point) *node {
	return &node{point: p, path: []r2.Point{p}, parent: noParent}
}

// isNear returns whether the node lies within radius of p.
func (n *node) isNear(p r2.Point, radius float64) bool {
	return spatialmath.SquaredDistance(n.point, p) <= utils.Square(radius)
}

// NodeView is a read-only copy of a tree node handed to observers.
type NodeView struct {
	Point  r2.Point
	Parent int
	Cost   float64
}

// TreeView exposes the search tree to an IterationObserver without allowing it to be modified.
type TreeView interface {
	Len() int
	Node(i int) NodeView
	// Edge returns the interpolated path from the parent of node i to node i. The slice must not be modified.
	Edge(i int) []r2.Point
}
