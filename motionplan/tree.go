package motionplan

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/spatialmath"
)

// costTolerance is the slack allowed when checking that a node's cost equals its parent's cost plus the edge length.
const costTolerance = 1e-9

// tree is an arena of nodes rooted at index 0. Nodes are never removed; rewiring replaces a slot in place.
type tree struct {
	nodes []*node
}

func newTree(root r2.Point) *tree {
	return &tree{nodes: []*node{newRootNode(root)}}
}

func (t *tree) Len() int {
	return len(t.nodes)
}

func (t *tree) Node(i int) NodeView {
	n := t.nodes[i]
	return NodeView{Point: n.point, Parent: n.parent, Cost: n.cost}
}

func (t *tree) Edge(i int) []r2.Point {
	return t.nodes[i].path
}

// insert appends n and returns its index.
func (t *tree) insert(n *node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// replace swaps the node stored at index i. Children of i stay attached since they reference the index.
func (t *tree) replace(i int, n *node) {
	t.nodes[i] = n
}

// childrenOf returns the indices of every node whose parent is i, in ascending order.
func (t *tree) childrenOf(i int) []int {
	children := []int{}
	for j, n := range t.nodes {
		if n.parent == i {
			children = append(children, j)
		}
	}
	return children
}

// propagateCostToLeaves recomputes the cost of every descendant of i after the cost of i changed.
func (t *tree) propagateCostToLeaves(i int) {
	children := make(map[int][]int)
	for j, n := range t.nodes {
		if n.parent != noParent {
			children[n.parent] = append(children[n.parent], j)
		}
	}
	stack := []int{i}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := t.nodes[current]
		for _, j := range children[current] {
			child := t.nodes[j]
			child.cost = parent.cost + spatialmath.Distance(parent.point, child.point)
			stack = append(stack, j)
		}
	}
}

// pathTo returns the points from the root to node i, inclusive.
func (t *tree) pathTo(i int) []r2.Point {
	reversed := []r2.Point{}
	for j := i; j != noParent; j = t.nodes[j].parent {
		reversed = append(reversed, t.nodes[j].point)
	}
	path := make([]r2.Point, 0, len(reversed))
	for j := len(reversed) - 1; j >= 0; j-- {
		path = append(path, reversed[j])
	}
	return path
}

// extractPath returns the waypoints from the root through node i, ending at goal.
func (t *tree) extractPath(i int, goal r2.Point) []r2.Point {
	path := t.pathTo(i)
	if path[len(path)-1] != goal {
		path = append(path, goal)
	}
	return path
}

// verify checks that every node reaches the root through its parents and that every cost matches its parent chain.
func (t *tree) verify() error {
	if len(t.nodes) == 0 {
		return errors.New("tree has no root")
	}
	if root := t.nodes[0]; root.parent != noParent || root.cost != 0 {
		return errors.Errorf("malformed root, parent %d cost %f", root.parent, root.cost)
	}
	for i := 1; i < len(t.nodes); i++ {
		n := t.nodes[i]
		if n.parent < 0 || n.parent >= len(t.nodes) || n.parent == i {
			return errors.Errorf("node %d has invalid parent %d", i, n.parent)
		}
		parent := t.nodes[n.parent]
		expected := parent.cost + spatialmath.Distance(parent.point, n.point)
		if diff := n.cost - expected; diff > costTolerance || diff < -costTolerance {
			return errors.Errorf("node %d has cost %f, expected %f", i, n.cost, expected)
		}
		steps := 0
		for j := i; j != 0; j = t.nodes[j].parent {
			if steps > len(t.nodes) {
				return errors.Errorf("node %d does not reach the root", i)
			}
			steps++
		}
	}
	return nil
}
