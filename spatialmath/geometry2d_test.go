package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestDistanceAndAngle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 3, Y: 4}
	test.That(t, Distance(a, b), test.ShouldAlmostEqual, 5)
	test.That(t, SquaredDistance(a, b), test.ShouldAlmostEqual, 25)
	test.That(t, Angle(a, r2.Point{X: 0, Y: 1}), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, Angle(a, r2.Point{X: -1, Y: 0}), test.ShouldAlmostEqual, math.Pi)

	d, theta := DistanceAndAngle(b, a)
	test.That(t, d, test.ShouldAlmostEqual, 5)
	test.That(t, theta, test.ShouldAlmostEqual, math.Atan2(-4, -3))

	// degenerate: identical points
	d, theta = DistanceAndAngle(a, a)
	test.That(t, d, test.ShouldEqual, 0)
	test.That(t, theta, test.ShouldEqual, 0)
}

func TestSquaredDistanceToSegment(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 4, Y: 0}
	// interior projection
	test.That(t, SquaredDistanceToSegment(r2.Point{X: 2, Y: 3}, a, b), test.ShouldAlmostEqual, 9)
	// beyond either end the nearest endpoint counts
	test.That(t, SquaredDistanceToSegment(r2.Point{X: -3, Y: 4}, a, b), test.ShouldAlmostEqual, 25)
	test.That(t, SquaredDistanceToSegment(r2.Point{X: 7, Y: 4}, a, b), test.ShouldAlmostEqual, 25)
	// on the segment
	test.That(t, SquaredDistanceToSegment(r2.Point{X: 1.5}, a, b), test.ShouldAlmostEqual, 0)
	// zero length segment
	test.That(t, SquaredDistanceToSegment(r2.Point{X: 1, Y: 1}, a, a), test.ShouldAlmostEqual, 2)
}

func TestInterpolateStep(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}

	p := InterpolateStep(a, b, 2.5)
	test.That(t, PointAlmostEqual(p, r2.Point{X: 2.5, Y: 0}, 1e-9), test.ShouldBeTrue)

	// never overshoots
	p = InterpolateStep(a, b, 25)
	test.That(t, p, test.ShouldResemble, b)

	// zero length segments return the target
	p = InterpolateStep(a, a, 1)
	test.That(t, p, test.ShouldResemble, a)

	p = PointAlongBearing(a, 2, math.Pi/2)
	test.That(t, PointAlmostEqual(p, r2.Point{X: 0, Y: 2}, 1e-9), test.ShouldBeTrue)
}

func TestCircle(t *testing.T) {
	_, err := NewCircle(r2.Point{}, -1)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewCircle(r2.Point{}, math.NaN())
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewCircle(r2.Point{}, math.Inf(1))
	test.That(t, err, test.ShouldNotBeNil)

	c, err := NewCircle(r2.Point{X: 5, Y: 5}, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Contains(r2.Point{X: 5, Y: 6}, 0), test.ShouldBeTrue)
	test.That(t, c.Contains(r2.Point{X: 5, Y: 6.1}, 0), test.ShouldBeFalse)
	test.That(t, c.Contains(r2.Point{X: 5, Y: 6.1}, 0.2), test.ShouldBeTrue)
	test.That(t, c.Inflate(0.2).Radius, test.ShouldAlmostEqual, 1.2)
	test.That(t, c.AlmostEqual(Circle{Center: r2.Point{X: 5 + 1e-12, Y: 5}, Radius: 1}, 1e-9), test.ShouldBeTrue)

	bounds := c.Bounds()
	test.That(t, bounds.PointCoord(0), test.ShouldAlmostEqual, 4)
	test.That(t, bounds.LengthsCoord(0), test.ShouldAlmostEqual, 2)

	// zero radius circles are legal and still produce usable bounds
	zero, err := NewCircle(r2.Point{X: 1, Y: 1}, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, zero.Bounds().LengthsCoord(1), test.ShouldBeGreaterThan, 0)
	test.That(t, zero.Contains(r2.Point{X: 1, Y: 1}, 0), test.ShouldBeTrue)
}

func TestBoundsAround(t *testing.T) {
	_, err := BoundsAround(nil, 0)
	test.That(t, err, test.ShouldNotBeNil)

	rect, err := BoundsAround([]r2.Point{{X: 1, Y: 2}, {X: -1, Y: 4}}, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rect.PointCoord(0), test.ShouldAlmostEqual, -1.5)
	test.That(t, rect.PointCoord(1), test.ShouldAlmostEqual, 1.5)
	test.That(t, rect.LengthsCoord(0), test.ShouldAlmostEqual, 3, 1e-6)
	test.That(t, rect.LengthsCoord(1), test.ShouldAlmostEqual, 3, 1e-6)

	// a single point still yields a non degenerate rectangle
	_, err = BoundsAround([]r2.Point{{X: 1, Y: 2}}, 0)
	test.That(t, err, test.ShouldBeNil)
}

func TestRegion(t *testing.T) {
	_, err := NewRegion(r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1})
	test.That(t, err, test.ShouldNotBeNil)

	region, err := NewSquareRegion(-2, 15)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, region.Contains(r2.Point{X: 0, Y: 0}), test.ShouldBeTrue)
	test.That(t, region.Contains(r2.Point{X: 15, Y: -2}), test.ShouldBeTrue)
	test.That(t, region.Contains(r2.Point{X: 15.01, Y: 0}), test.ShouldBeFalse)

	//nolint:gosec
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		test.That(t, region.Contains(region.Sample(rng)), test.ShouldBeTrue)
	}
}
