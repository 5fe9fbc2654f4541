package cli

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
)

// Number of buckets of the path length histogram printed by bench.
const lengthHistogramBins = 8

type trialResult struct {
	seed    int64
	solved  bool
	cost    float64
	length  float64
	iters   int
	nodes   int
	elapsed time.Duration
}

// benchSummary aggregates the solved trials of a bench run.
type benchSummary struct {
	trials       int
	solved       int
	meanLength   float64
	stdLength    float64
	medianLength float64
	p90Length    float64
	minLength    float64
	maxLength    float64
	meanIters    float64
	meanElapsed  time.Duration
}

func solvedTrials(results []trialResult) []trialResult {
	return lo.Filter(results, func(r trialResult, _ int) bool { return r.solved })
}

func trialLengths(results []trialResult) []float64 {
	return lo.Map(results, func(r trialResult, _ int) float64 { return r.length })
}

func summarize(results []trialResult) benchSummary {
	solved := solvedTrials(results)
	summary := benchSummary{trials: len(results), solved: len(solved)}
	if len(solved) == 0 {
		return summary
	}
	lengths := trialLengths(solved)
	sort.Float64s(lengths)
	summary.meanLength, summary.stdLength = stat.MeanStdDev(lengths, nil)
	summary.medianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	if p90, err := stats.Percentile(lengths, 90); err == nil {
		summary.p90Length = p90
	}
	summary.minLength = floats.Min(lengths)
	summary.maxLength = floats.Max(lengths)
	summary.meanIters = stat.Mean(lo.Map(solved, func(r trialResult, _ int) float64 { return float64(r.iters) }), nil)
	summary.meanElapsed = lo.SumBy(solved, func(r trialResult) time.Duration { return r.elapsed }) / time.Duration(len(solved))
	return summary
}

// runTrials plans the problem once per seed, in parallel. Planning failures are recorded, any other error aborts.
func runTrials(
	c *cli.Context,
	logger logging.Logger,
	problem *motionplan.Problem,
	opts *motionplan.PlannerOptions,
	firstSeed int64,
	trials int,
) ([]trialResult, error) {
	results := make([]trialResult, trials)
	finished := atomic.NewInt32(0)
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < trials; i++ {
		g.Go(func() error {
			trialOpts := *opts
			trialOpts.Seed = firstSeed + int64(i)
			mp, err := motionplan.NewRRTStarMotionPlanner(problem, &trialOpts, logger.Sublogger(fmt.Sprintf("trial%d", i)))
			if err != nil {
				return err
			}
			result := trialResult{seed: trialOpts.Seed}
			plan, err := mp.Plan(ctx)
			switch {
			case errors.Is(err, motionplan.ErrPlannerFailed):
			case err != nil:
				return err
			default:
				result.solved = true
				result.cost = plan.Cost
				result.length = plan.Length()
				result.iters = plan.Iterations
				result.nodes = plan.TreeSize
				result.elapsed = plan.Elapsed
			}
			results[i] = result
			logger.Debugf("trial %d finished, solved: %t (%d/%d)", i, result.solved, finished.Inc(), trials)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BenchAction runs --trials seeded plans of the problem in the --config file and prints per trial results and a summary.
func BenchAction(c *cli.Context) error {
	trials := c.Int(trialsFlag)
	if trials <= 0 {
		return errors.Errorf("--%s must be positive, got %d", trialsFlag, trials)
	}
	logger, err := newCLILogger(c)
	if err != nil {
		return err
	}
	problem, opts, err := loadProblem(c, logger)
	if err != nil {
		return err
	}
	results, err := runTrials(c, logger, problem, opts, c.Int64(seedFlag), trials)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetTitle("RRT* bench: %d trials", trials)
	t.AppendHeader(table.Row{"seed", "solved", "cost", "length", "iterations", "nodes", "elapsed"})
	for _, r := range results {
		if !r.solved {
			t.AppendRow(table.Row{r.seed, false, "-", "-", "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{
			r.seed, true, fmt.Sprintf("%.4f", r.cost), fmt.Sprintf("%.4f", r.length), r.iters, r.nodes, r.elapsed.Round(time.Microsecond),
		})
	}
	printf(c.App.Writer, "%s", t.Render())

	summary := summarize(results)
	s := table.NewWriter()
	s.SetTitle("summary")
	s.AppendRows([]table.Row{
		{"solved", fmt.Sprintf("%d/%d", summary.solved, summary.trials)},
		{"mean length", fmt.Sprintf("%.4f", summary.meanLength)},
		{"std length", fmt.Sprintf("%.4f", summary.stdLength)},
		{"median length", fmt.Sprintf("%.4f", summary.medianLength)},
		{"p90 length", fmt.Sprintf("%.4f", summary.p90Length)},
		{"min length", fmt.Sprintf("%.4f", summary.minLength)},
		{"max length", fmt.Sprintf("%.4f", summary.maxLength)},
		{"mean iterations", fmt.Sprintf("%.1f", summary.meanIters)},
		{"mean elapsed", summary.meanElapsed.Round(time.Microsecond)},
	})
	printf(c.App.Writer, "%s", s.Render())

	if summary.solved > 1 && summary.maxLength > summary.minLength {
		printf(c.App.Writer, "path length distribution")
		hist := histogram.Hist(lengthHistogramBins, trialLengths(solvedTrials(results)))
		if err := histogram.Fprint(c.App.Writer, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}
	if summary.solved < summary.trials {
		warningf(c.App.ErrWriter, "%d of %d trials found no path", summary.trials-summary.solved, summary.trials)
	}
	return nil
}
