package spatialmath

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/utils"
)

// Region is an axis aligned rectangle from which planner samples are drawn.
type Region struct {
	Min r2.Point `json:"min"`
	Max r2.Point `json:"max"`
}

// NewRegion instantiates a Region, checking that min does not exceed max on either axis.
func NewRegion(lo, hi r2.Point) (Region, error) {
	if lo.X > hi.X || lo.Y > hi.Y {
		return Region{}, errors.Errorf("invalid sampling region, min %v exceeds max %v", lo, hi)
	}
	return Region{Min: lo, Max: hi}, nil
}

// NewSquareRegion returns the region [lo, hi] x [lo, hi].
func NewSquareRegion(lo, hi float64) (Region, error) {
	return NewRegion(r2.Point{X: lo, Y: lo}, r2.Point{X: hi, Y: hi})
}

// Contains returns whether p lies inside or on the boundary of the region.
func (r Region) Contains(p r2.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Sample draws a uniformly distributed point from the region.
func (r Region) Sample(rng *rand.Rand) r2.Point {
	return r2.Point{
		X: utils.SampleRandomFloatRange(r.Min.X, r.Max.X, rng),
		Y: utils.SampleRandomFloatRange(r.Min.Y, r.Max.Y, rng),
	}
}

func (r Region) String() string {
	return fmt.Sprintf("region(x: [%.3f, %.3f], y: [%.3f, %.3f])", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}
