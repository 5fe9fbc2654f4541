package motionplan

import (
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/spatialmath"
)

// Problem is a single planning query: get from Start to Goal without touching any obstacle, sampling from Region.
type Problem struct {
	Start     r2.Point             `json:"start"`
	Goal      r2.Point             `json:"goal"`
	Region    spatialmath.Region   `json:"region"`
	Obstacles []spatialmath.Circle `json:"obstacles"`
}

// Validate returns every reason the problem is unusable, combined into one error.
func (p *Problem) Validate() error {
	if p == nil {
		return newInvalidConfigurationError("no planning problem given")
	}
	var errs error
	if !isFinitePoint(p.Start) {
		errs = multierr.Append(errs, newInvalidConfigurationError("start %v is not finite", p.Start))
	}
	if !isFinitePoint(p.Goal) {
		errs = multierr.Append(errs, newInvalidConfigurationError("goal %v is not finite", p.Goal))
	}
	if !isFinitePoint(p.Region.Min) || !isFinitePoint(p.Region.Max) {
		errs = multierr.Append(errs, newInvalidConfigurationError("sampling %v is not finite", p.Region))
	} else if p.Region.Min.X > p.Region.Max.X || p.Region.Min.Y > p.Region.Max.Y {
		errs = multierr.Append(errs, newInvalidConfigurationError("inverted sampling region %v", p.Region))
	} else {
		if !p.Region.Contains(p.Start) {
			errs = multierr.Append(errs, newInvalidConfigurationError("start %v outside sampling %v", p.Start, p.Region))
		}
		if !p.Region.Contains(p.Goal) {
			errs = multierr.Append(errs, newInvalidConfigurationError("goal %v outside sampling %v", p.Goal, p.Region))
		}
	}
	for i, obs := range p.Obstacles {
		if !isFinitePoint(obs.Center) {
			errs = multierr.Append(errs, newInvalidConfigurationError("obstacle %d has non-finite center %v", i, obs.Center))
		}
		if !isNonNegativeFinite(obs.Radius) {
			errs = multierr.Append(errs, newInvalidConfigurationError("obstacle %d has invalid radius %v", i, obs.Radius))
		}
	}
	return errs
}

func isFinitePoint(p r2.Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}
