package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rrtplan/config"
	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/pathio"
)

// loadProblem reads the --config file into a problem and its planner options.
func loadProblem(c *cli.Context, logger logging.Logger) (*motionplan.Problem, *motionplan.PlannerOptions, error) {
	cfg, err := config.Read(c.String(configFlag), logger)
	if err != nil {
		return nil, nil, err
	}
	problem, err := cfg.Problem()
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.PlannerOptions()
	if err != nil {
		return nil, nil, err
	}
	return problem, opts, nil
}

// PlanAction solves the problem in the --config file and prints the resulting plan.
func PlanAction(c *cli.Context) error {
	logger, err := newCLILogger(c)
	if err != nil {
		return err
	}
	problem, opts, err := loadProblem(c, logger)
	if err != nil {
		return err
	}
	if c.IsSet(seedFlag) {
		opts.Seed = c.Int64(seedFlag)
	}

	format := pathio.FormatFromPath(c.String(outFlag))
	if c.IsSet(formatFlag) {
		if format, err = pathio.ParseFormat(c.String(formatFlag)); err != nil {
			return err
		}
	}

	mp, err := motionplan.NewRRTStarMotionPlanner(problem, opts, logger.Sublogger("rrtstar"))
	if err != nil {
		return err
	}
	plan, err := mp.Plan(c.Context)
	if err != nil {
		if errors.Is(err, motionplan.ErrPlannerFailed) {
			warningf(c.App.ErrWriter, "no path found, try a larger max_iter or a different seed")
		}
		return err
	}
	logger.Infow("plan found",
		"id", plan.ID.String(),
		"cost", plan.Cost,
		"length", plan.Length(),
		"iterations", plan.Iterations,
		"nodes", plan.TreeSize,
	)
	if !plan.Smoothed {
		warningf(c.App.ErrWriter, "smoothed path collided with an obstacle, using the raw tree path")
	}
	printf(c.App.Writer, "%s", plan.String())

	if out := c.String(outFlag); out != "" {
		if err := pathio.Write(out, format, plan.Waypoints); err != nil {
			return errors.Wrapf(err, "cannot write waypoints to %q", out)
		}
		infof(c.App.Writer, "wrote %d waypoints to %s", len(plan.Waypoints), out)
	}
	return nil
}
