package motionplan

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/spatialmath"
)

// Sampler produces the target point of each planner iteration.
type Sampler interface {
	Sample() r2.Point
}

// goalBiasedSampler returns the goal for goalSampleRate percent of draws and a uniform point in the region otherwise.
type goalBiasedSampler struct {
	region         spatialmath.Region
	goal           r2.Point
	goalSampleRate float64
	randseed       *rand.Rand
}

// NewGoalBiasedSampler returns the sampler used by default, drawing from the given random source.
func NewGoalBiasedSampler(region spatialmath.Region, goal r2.Point, goalSampleRate float64, randseed *rand.Rand) Sampler {
	return &goalBiasedSampler{region: region, goal: goal, goalSampleRate: goalSampleRate, randseed: randseed}
}

func (s *goalBiasedSampler) Sample() r2.Point {
	if s.randseed.Float64()*100 >= s.goalSampleRate {
		return s.region.Sample(s.randseed)
	}
	return s.goal
}

type sequenceSampler struct {
	points []r2.Point
	next   int
}

// NewSequenceSampler returns a sampler replaying the given points in order, starting over once exhausted.
func NewSequenceSampler(points ...r2.Point) (Sampler, error) {
	if len(points) == 0 {
		return nil, errors.New("sequence sampler needs at least one point")
	}
	return &sequenceSampler{points: points}, nil
}

func (s *sequenceSampler) Sample() r2.Point {
	p := s.points[s.next]
	s.next = (s.next + 1) % len(s.points)
	return p
}
