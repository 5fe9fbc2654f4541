package motionplan

import (
	"github.com/pkg/errors"
)

var (
	// ErrPlannerFailed is returned when no collision free connection to the goal was found within the iteration budget.
	ErrPlannerFailed = errors.New("motion planner failed to find path")

	// ErrInvalidConfiguration is wrapped by every error describing an unusable problem or set of planner options.
	ErrInvalidConfiguration = errors.New("invalid planner configuration")
)

// NewPlannerFailedError returns an error wrapping ErrPlannerFailed that records how many iterations were spent.
func NewPlannerFailedError(iterations int) error {
	return errors.Wrapf(ErrPlannerFailed, "no collision free goal connection after %d iterations", iterations)
}

func newInvalidConfigurationError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}
