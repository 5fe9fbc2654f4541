package motionplan

import (
	"math"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/multierr"
)

// default values for planning options, matching the classic RRT* demo parameters.
const (
	// Max distance a single steer may advance the tree.
	defaultExpandDis = 30.0

	// Distance between consecutive interpolation points along an edge.
	defaultPathResolution = 1.0

	// Percentage of samples that are the goal itself.
	defaultGoalSampleRate = 20.0

	// Number of planner iterations before giving up.
	defaultMaxIter = 300

	// Scale of the shrinking near-node radius.
	defaultConnectCircleDist = 50.0

	// Window size of the moving average applied to the extracted path.
	defaultSmoothWindow = 5

	// Percentage interval of max iterations after which to print debug logs.
	defaultLoggingInterval = 0.1

	// Seed of the default sampler.
	defaultSeed = 1
)

// PlannerOptions are a set of options to be passed to a planner which will specify how to solve a motion planning problem.
type PlannerOptions struct {
	// Max distance a steer may advance from the nearest node toward a sample.
	ExpandDis float64 `json:"expand_dis" jsonschema:"exclusiveMinimum=0"`

	// Interpolation step used to build edge paths for collision checking.
	PathResolution float64 `json:"path_resolution" jsonschema:"exclusiveMinimum=0"`

	// Percentage (0-100) of iterations that sample the goal directly.
	GoalSampleRate float64 `json:"goal_sample_rate" jsonschema:"minimum=0,maximum=100"`

	// Number of planner iterations before giving up.
	MaxIter int `json:"max_iter" jsonschema:"minimum=1"`

	// Scale constant of the shrinking-ball near-node radius.
	ConnectCircleDist float64 `json:"connect_circle_dist" jsonschema:"minimum=0"`

	// If set, keep sampling until MaxIter even after the goal has been connected.
	SearchUntilMaxIter bool `json:"search_until_max_iter"`

	// Radius by which every obstacle is inflated during collision checks.
	RobotRadius float64 `json:"robot_radius" jsonschema:"minimum=0"`

	// Moving average window applied to the final path. Values below 3 disable smoothing.
	SmoothWindow int `json:"smooth_window"`

	// Percentage interval of max iterations after which to print debug logs
	LoggingInterval float64 `json:"logging_interval"`

	// Number of seconds before terminating planner. Zero or less disables the deadline.
	Timeout float64 `json:"timeout"`

	// Seed of the default goal biased sampler.
	Seed int64 `json:"seed"`
}

// NewBasicPlannerOptions specifies a set of basic options for the planner.
func NewBasicPlannerOptions() *PlannerOptions {
	return &PlannerOptions{
		ExpandDis:         defaultExpandDis,
		PathResolution:    defaultPathResolution,
		GoalSampleRate:    defaultGoalSampleRate,
		MaxIter:           defaultMaxIter,
		ConnectCircleDist: defaultConnectCircleDist,
		SmoothWindow:      defaultSmoothWindow,
		LoggingInterval:   defaultLoggingInterval,
		Seed:              defaultSeed,
	}
}

// NewPlannerOptionsFromExtra overlays the given attribute map, keyed by json field names, on top of the basic options.
func NewPlannerOptionsFromExtra(extra map[string]interface{}) (*PlannerOptions, error) {
	opts := NewBasicPlannerOptions()
	if err := opts.Merge(extra); err != nil {
		return nil, err
	}
	return opts, opts.Validate()
}

// Merge decodes the attribute map, keyed by json field names, into the options. Unknown keys are an error.
func (opts *PlannerOptions) Merge(extra map[string]interface{}) error {
	if len(extra) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(extra); err != nil {
		return newInvalidConfigurationError("cannot decode planner options: %v", err)
	}
	return nil
}

// Validate returns every reason the options cannot be used to plan, combined into one error. NaN and infinite
// values are rejected everywhere.
func (opts *PlannerOptions) Validate() error {
	var errs error
	if opts.MaxIter <= 0 {
		errs = multierr.Append(errs, newInvalidConfigurationError("max_iter must be positive, got %d", opts.MaxIter))
	}
	if !isPositiveFinite(opts.ExpandDis) {
		errs = multierr.Append(errs, newInvalidConfigurationError("expand_dis must be positive and finite, got %v", opts.ExpandDis))
	}
	if !isPositiveFinite(opts.PathResolution) {
		errs = multierr.Append(errs,
			newInvalidConfigurationError("path_resolution must be positive and finite, got %v", opts.PathResolution))
	}
	if !(opts.GoalSampleRate >= 0 && opts.GoalSampleRate <= 100) {
		errs = multierr.Append(errs, newInvalidConfigurationError("goal_sample_rate must be within [0, 100], got %v", opts.GoalSampleRate))
	}
	if !isNonNegativeFinite(opts.ConnectCircleDist) {
		errs = multierr.Append(errs,
			newInvalidConfigurationError("connect_circle_dist must be non-negative and finite, got %v", opts.ConnectCircleDist))
	}
	if !isNonNegativeFinite(opts.RobotRadius) {
		errs = multierr.Append(errs,
			newInvalidConfigurationError("robot_radius must be non-negative and finite, got %v", opts.RobotRadius))
	}
	if !isFinite(opts.LoggingInterval) {
		errs = multierr.Append(errs, newInvalidConfigurationError("logging_interval must be finite, got %v", opts.LoggingInterval))
	}
	if !isFinite(opts.Timeout) {
		errs = multierr.Append(errs, newInvalidConfigurationError("timeout must be finite, got %v", opts.Timeout))
	}
	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// comparisons with NaN are always false, so these are written to fail for it.
func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isNonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
