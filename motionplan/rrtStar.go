package motionplan

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/utils"
)

// RRTStarMotionPlanner grows a tree of collision free straight edges from the start of a Problem, choosing the
// cheapest parent for every new node and rewiring neighbors through it whenever that shortens their path.
type RRTStarMotionPlanner struct {
	problem  *Problem
	opts     *PlannerOptions
	logger   logging.Logger
	checker  *collisionChecker
	sampler  Sampler
	observer IterationObserver
	clock    clock.Clock
}

// NewRRTStarMotionPlanner creates a planner for the given problem. Nil options are replaced by NewBasicPlannerOptions.
func NewRRTStarMotionPlanner(problem *Problem, opts *PlannerOptions, logger logging.Logger) (*RRTStarMotionPlanner, error) {
	if opts == nil {
		opts = NewBasicPlannerOptions()
	}
	if err := multierr.Combine(problem.Validate(), opts.Validate()); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Global()
	}
	//nolint:gosec
	randseed := rand.New(rand.NewSource(opts.Seed))
	return &RRTStarMotionPlanner{
		problem: problem,
		opts:    opts,
		logger:  logger,
		checker: newCollisionChecker(problem.Obstacles, opts.RobotRadius, opts.PathResolution),
		sampler: NewGoalBiasedSampler(problem.Region, problem.Goal, opts.GoalSampleRate, randseed),
		clock:   clock.New(),
	}, nil
}

// WithSampler replaces the sampler drawing iteration targets.
func (mp *RRTStarMotionPlanner) WithSampler(sampler Sampler) *RRTStarMotionPlanner {
	mp.sampler = sampler
	return mp
}

// WithObserver registers an observer notified after every iteration.
func (mp *RRTStarMotionPlanner) WithObserver(observer IterationObserver) *RRTStarMotionPlanner {
	mp.observer = observer
	return mp
}

// WithClock replaces the clock used for the timeout deadline and for timing plans.
func (mp *RRTStarMotionPlanner) WithClock(c clock.Clock) *RRTStarMotionPlanner {
	mp.clock = c
	return mp
}

// Options returns the options the planner was built with.
func (mp *RRTStarMotionPlanner) Options() *PlannerOptions {
	return mp.opts
}

// Plan runs the search. It returns an error wrapping ErrPlannerFailed if the goal could not be connected within the
// iteration budget, or the context error if the search was interrupted before any connection was found.
func (mp *RRTStarMotionPlanner) Plan(ctx context.Context) (*Plan, error) {
	if mp.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = mp.clock.WithTimeout(ctx, time.Duration(mp.opts.Timeout*float64(time.Second)))
		defer cancel()
	}
	start := mp.clock.Now()
	plan, err := mp.plan(ctx)
	if err != nil {
		return nil, err
	}
	plan.Elapsed = mp.clock.Since(start)
	mp.logger.Debugw("planning finished",
		"id", plan.ID.String(),
		"iterations", plan.Iterations,
		"nodes", plan.TreeSize,
		"cost", plan.Cost,
		"elapsed", plan.Elapsed,
	)
	return plan, nil
}

func (mp *RRTStarMotionPlanner) plan(ctx context.Context) (*Plan, error) {
	if mp.problem.Start == mp.problem.Goal {
		if !mp.checker.pointIsSafe(mp.problem.Start) {
			return nil, errors.Wrap(NewPlannerFailedError(0), "start is in collision")
		}
		return mp.finish(newTree(mp.problem.Start), 0, 0, 0), nil
	}

	rrt := newTree(mp.problem.Start)
	logInterval := max(1, utils.ScaleByPct(mp.opts.MaxIter, mp.opts.LoggingInterval))
	for i := 0; i < mp.opts.MaxIter; i++ {
		select {
		case <-ctx.Done():
			if goalIdx, cost, ok := mp.searchBestGoalNode(rrt); ok {
				mp.logger.Debugf("interrupted after %d iterations, returning best path so far", i)
				return mp.finish(rrt, goalIdx, cost, i), nil
			}
			return nil, errors.Wrapf(ctx.Err(), "RRT* interrupted after %d iterations", i)
		default:
		}

		if i%logInterval == 0 {
			mp.logger.Debugf("RRT* progress: %d%%\tnodes: %d", 100*i/mp.opts.MaxIter, rrt.Len())
		}

		sample := mp.sampler.Sample()
		inserted := mp.extend(rrt, sample)
		if mp.observer != nil {
			mp.observer.ObserveIteration(IterationEvent{Iteration: i, Sample: sample, Inserted: inserted, Tree: rrt})
		}

		if !mp.opts.SearchUntilMaxIter && inserted >= 0 {
			if goalIdx, cost, ok := mp.searchBestGoalNode(rrt); ok {
				return mp.finish(rrt, goalIdx, cost, i+1), nil
			}
		}
	}

	if goalIdx, cost, ok := mp.searchBestGoalNode(rrt); ok {
		return mp.finish(rrt, goalIdx, cost, mp.opts.MaxIter), nil
	}
	mp.logger.Debugf("RRT* failed to reach goal, tree has %d nodes", rrt.Len())
	return nil, NewPlannerFailedError(mp.opts.MaxIter)
}

// extend runs one RRT* iteration toward sample and returns the index of the inserted node, or -1 if none was added.
func (mp *RRTStarMotionPlanner) extend(rrt *tree, sample r2.Point) int {
	nearestIdx := rrt.nearestIndex(sample)
	candidate := mp.steer(nearestIdx, rrt.nodes[nearestIdx], sample, mp.opts.ExpandDis)
	if !mp.checker.checkCollision(candidate) {
		return -1
	}
	nearIdxs := rrt.nearIndices(candidate.point, mp.opts.ConnectCircleDist, mp.opts.ExpandDis)
	chosen := mp.chooseParent(rrt, candidate, nearIdxs)
	if chosen == nil {
		return -1
	}
	newIdx := rrt.insert(chosen)
	mp.rewire(rrt, newIdx, nearIdxs)
	return newIdx
}

// chooseParent connects the candidate to whichever near node yields the lowest cost through a collision free edge.
// Ties go to the lowest index. Returns nil if no near node can be connected.
func (mp *RRTStarMotionPlanner) chooseParent(rrt *tree, candidate *node, nearIdxs []int) *node {
	var best *node
	minCost := math.Inf(1)
	for _, i := range nearIdxs {
		edge := mp.steer(i, rrt.nodes[i], candidate.point, math.Inf(1))
		if !mp.checker.checkCollision(edge) {
			continue
		}
		if edge.cost < minCost {
			best = edge
			minCost = edge.cost
		}
	}
	return best
}

// rewire reroutes every near node through newIdx when that is strictly cheaper and collision free, then pushes the
// new costs down to its descendants.
func (mp *RRTStarMotionPlanner) rewire(rrt *tree, newIdx int, nearIdxs []int) {
	newNode := rrt.nodes[newIdx]
	for _, i := range nearIdxs {
		near := rrt.nodes[i]
		edge := mp.steer(newIdx, newNode, near.point, math.Inf(1))
		if edge.cost >= near.cost || !mp.checker.checkCollision(edge) {
			continue
		}
		rrt.replace(i, edge)
		rrt.propagateCostToLeaves(i)
	}
}

// searchBestGoalNode returns the node within expand_dis of the goal whose collision free connection to the goal is
// cheapest, along with the total cost to the goal through it.
func (mp *RRTStarMotionPlanner) searchBestGoalNode(rrt *tree) (int, float64, bool) {
	best := -1
	minCost := math.Inf(1)
	for i, n := range rrt.nodes {
		if !n.isNear(mp.problem.Goal, mp.opts.ExpandDis) {
			continue
		}
		edge := mp.steer(i, n, mp.problem.Goal, math.Inf(1))
		if !mp.checker.checkCollision(edge) {
			continue
		}
		if edge.cost < minCost {
			best = i
			minCost = edge.cost
		}
	}
	return best, minCost, best >= 0
}

// finish extracts and smooths the path through goalIdx.
func (mp *RRTStarMotionPlanner) finish(rrt *tree, goalIdx int, cost float64, iterations int) *Plan {
	raw := rrt.extractPath(goalIdx, mp.problem.Goal)
	waypoints, smoothed := mp.smoothAndValidate(raw)
	return newPlan(raw, waypoints, cost, iterations, rrt.Len(), smoothed)
}
