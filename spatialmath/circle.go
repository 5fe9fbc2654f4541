package spatialmath

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/utils"
)

// minBoundsExtent keeps rtree rectangles non-degenerate for zero-radius circles.
const minBoundsExtent = 1e-9

// Circle is a static circular obstacle in the plane.
type Circle struct {
	Center r2.Point `json:"center"`
	Radius float64  `json:"radius"`
}

// NewCircle instantiates a new Circle. Zero radii are allowed, negative or non-finite ones are not.
func NewCircle(center r2.Point, radius float64) (Circle, error) {
	if !(radius >= 0) || math.IsInf(radius, 1) {
		return Circle{}, newBadGeometryDimensionsError(radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Inflate returns a copy of the circle whose radius has been grown by r.
func (c Circle) Inflate(r float64) Circle {
	return Circle{Center: c.Center, Radius: c.Radius + r}
}

// Contains returns whether p lies inside or on the circle after inflating it by `inflation`.
func (c Circle) Contains(p r2.Point, inflation float64) bool {
	return SquaredDistance(c.Center, p) <= utils.Square(c.Radius+inflation)
}

// Bounds returns the axis aligned bounding box of the circle. It satisfies rtreego.Spatial.
func (c Circle) Bounds() rtreego.Rect {
	side := 2 * c.Radius
	if side < minBoundsExtent {
		side = minBoundsExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{c.Center.X - side/2, c.Center.Y - side/2}, []float64{side, side})
	if err != nil {
		// side is always positive so NewRect cannot fail
		panic(err)
	}
	return rect
}

// AlmostEqual returns whether two circles are within epsilon of each other.
func (c Circle) AlmostEqual(other Circle, epsilon float64) bool {
	return PointAlmostEqual(c.Center, other.Center, epsilon) && utils.Float64AlmostEqual(c.Radius, other.Radius, epsilon)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(x: %.3f, y: %.3f, r: %.3f)", c.Center.X, c.Center.Y, c.Radius)
}

// BoundsAround returns a rtreego rectangle spanning the given points, padded by `margin` on every side.
func BoundsAround(points []r2.Point, margin float64) (rtreego.Rect, error) {
	if len(points) == 0 {
		return rtreego.Rect{}, errors.New("cannot bound an empty set of points")
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	width := hi.X - lo.X + 2*margin + minBoundsExtent
	height := hi.Y - lo.Y + 2*margin + minBoundsExtent
	return rtreego.NewRect(rtreego.Point{lo.X - margin, lo.Y - margin}, []float64{width, height})
}

func newBadGeometryDimensionsError(radius float64) error {
	return errors.Errorf("invalid circle radius %v, radius must be non-negative and finite", radius)
}
