// Package config reads planning problems from JSON files.
package config

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/spatialmath"
)

// Config describes a single planning problem and the planner options used to solve it.
type Config struct {
	ConfigFilePath string `json:"-"`

	Start Point `json:"start" jsonschema:"required"`
	Goal  Point `json:"goal" jsonschema:"required"`

	// RandArea is a [min, max] pair sampling the square region min..max on both axes. Mutually exclusive with Region.
	RandArea []float64     `json:"rand_area,omitempty" jsonschema:"minItems=2,maxItems=2"`
	Region   *RegionConfig `json:"region,omitempty"`

	Obstacles []Obstacle `json:"obstacles"`

	// Planner holds overrides of the default planner options, keyed by their json names.
	Planner map[string]interface{} `json:"planner,omitempty"`
}

// Point is an [x, y] pair.
type Point [2]float64

// R2 converts the point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p[0], Y: p[1]}
}

// Obstacle is an [x, y, radius] triple.
type Obstacle [3]float64

// Circle converts the obstacle, failing on negative radii.
func (o Obstacle) Circle() (spatialmath.Circle, error) {
	return spatialmath.NewCircle(r2.Point{X: o[0], Y: o[1]}, o[2])
}

// RegionConfig is a rectangular sampling region.
type RegionConfig struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Validate ensures all parts of the config are valid.
func (c *Config) Validate(path string) error {
	var errs error
	switch {
	case c.Region != nil && len(c.RandArea) > 0:
		errs = multierr.Append(errs, errors.Errorf("%s: only one of rand_area and region may be set", path))
	case c.Region == nil && len(c.RandArea) == 0:
		errs = multierr.Append(errs, errors.Errorf("%s: one of rand_area or region is required", path))
	case c.Region == nil && len(c.RandArea) != 2:
		errs = multierr.Append(errs, errors.Errorf("%s: rand_area must be a [min, max] pair, got %v", path, c.RandArea))
	}
	for i, o := range c.Obstacles {
		if _, err := o.Circle(); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%s.obstacles.%d", path, i))
		}
	}
	if _, err := c.PlannerOptions(); err != nil {
		errs = multierr.Append(errs, errors.Wrapf(err, "%s.planner", path))
	}
	return errs
}

// SamplingRegion returns the region planner samples are drawn from.
func (c *Config) SamplingRegion() (spatialmath.Region, error) {
	if c.Region != nil {
		return spatialmath.NewRegion(c.Region.Min.R2(), c.Region.Max.R2())
	}
	if len(c.RandArea) != 2 {
		return spatialmath.Region{}, errors.Errorf("rand_area must be a [min, max] pair, got %v", c.RandArea)
	}
	return spatialmath.NewSquareRegion(c.RandArea[0], c.RandArea[1])
}

// Problem builds the planning problem described by the config.
func (c *Config) Problem() (*motionplan.Problem, error) {
	region, err := c.SamplingRegion()
	if err != nil {
		return nil, err
	}
	obstacles := make([]spatialmath.Circle, 0, len(c.Obstacles))
	for _, o := range c.Obstacles {
		circle, err := o.Circle()
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, circle)
	}
	problem := &motionplan.Problem{
		Start:     c.Start.R2(),
		Goal:      c.Goal.R2(),
		Region:    region,
		Obstacles: obstacles,
	}
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	return problem, nil
}

// PlannerOptions returns the default planner options with the config's overrides applied.
func (c *Config) PlannerOptions() (*motionplan.PlannerOptions, error) {
	return motionplan.NewPlannerOptionsFromExtra(c.Planner)
}
