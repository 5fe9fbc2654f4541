package motionplan

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/spatialmath"
)

func TestSmoothPath(t *testing.T) {
	zigzag := []r2.Point{{}, {X: 1, Y: 1}, {X: 2}, {X: 3, Y: 1}, {X: 4}, {X: 5, Y: 1}}

	t.Run("disabled", func(t *testing.T) {
		test.That(t, smoothPath(zigzag, 2), test.ShouldResemble, zigzag)
		test.That(t, smoothPath(zigzag[:2], 5), test.ShouldResemble, zigzag[:2])
	})

	t.Run("window", func(t *testing.T) {
		smoothed := smoothPath(zigzag, 3)
		test.That(t, len(smoothed), test.ShouldEqual, len(zigzag))
		test.That(t, smoothed[0], test.ShouldResemble, zigzag[0])
		test.That(t, smoothed[5], test.ShouldResemble, zigzag[5])
		test.That(t, smoothed[1].X, test.ShouldAlmostEqual, 1)
		test.That(t, smoothed[1].Y, test.ShouldAlmostEqual, 1./3)
		test.That(t, smoothed[2].Y, test.ShouldAlmostEqual, 2./3)
		// input is untouched
		test.That(t, zigzag[1], test.ShouldResemble, r2.Point{X: 1, Y: 1})
	})

	t.Run("straight lines stay straight", func(t *testing.T) {
		line := []r2.Point{{}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}
		for _, p := range smoothPath(line, 5) {
			test.That(t, p.X, test.ShouldAlmostEqual, p.Y)
		}
	})
}

func TestSmoothAndValidate(t *testing.T) {
	logger := logging.NewTestLogger(t)
	opts := NewBasicPlannerOptions()
	opts.SmoothWindow = 3
	opts.PathResolution = 0.05

	corner := []r2.Point{{}, {X: 2}, {X: 2, Y: 2}}
	free := &RRTStarMotionPlanner{opts: opts, logger: logger, checker: newCollisionChecker(nil, 0, opts.PathResolution)}
	smoothed, ok := free.smoothAndValidate(corner)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, smoothed[1], test.ShouldNotResemble, corner[1])

	// an obstacle hugging the inside of the corner makes the shortcut collide
	obstacles := []spatialmath.Circle{{Center: r2.Point{X: 1.5, Y: 0.5}, Radius: 0.3}}
	blocked := &RRTStarMotionPlanner{opts: opts, logger: logger, checker: newCollisionChecker(obstacles, 0, opts.PathResolution)}
	smoothed, ok = blocked.smoothAndValidate(corner)
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, smoothed, test.ShouldResemble, corner)
}
