package motionplan

import (
	"github.com/golang/geo/r2"
)

// smoothPath applies a centered moving average of the given window to every interior waypoint. Windows are truncated
// at the ends of the path and both endpoints are kept where they are.
func smoothPath(path []r2.Point, window int) []r2.Point {
	smoothed := make([]r2.Point, len(path))
	copy(smoothed, path)
	if window <= 2 || len(path) <= 2 {
		return smoothed
	}
	half := window / 2
	for i := 1; i < len(path)-1; i++ {
		lo := max(0, i-half)
		hi := min(len(path)-1, i+half)
		var sum r2.Point
		for j := lo; j <= hi; j++ {
			sum = sum.Add(path[j])
		}
		smoothed[i] = sum.Mul(1 / float64(hi-lo+1))
	}
	return smoothed
}

// smoothAndValidate smooths the path and checks every resulting segment for collisions. If any segment collides the
// raw path is returned along with false.
func (mp *RRTStarMotionPlanner) smoothAndValidate(path []r2.Point) ([]r2.Point, bool) {
	smoothed := smoothPath(path, mp.opts.SmoothWindow)
	for i := 0; i < len(smoothed)-1; i++ {
		if !mp.checker.checkSegment(smoothed[i], smoothed[i+1]) {
			mp.logger.Debugf("smoothed segment %d collides, keeping raw path", i)
			return path, false
		}
	}
	return smoothed, true
}
