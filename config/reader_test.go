package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/spatialmath"
)

func TestReadScenario(t *testing.T) {
	logger := logging.NewTestLogger(t)
	cfg, err := Read(filepath.Join("..", "etc", "configs", "scenario.json"), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEndWith, "scenario.json")
	test.That(t, len(cfg.Obstacles), test.ShouldEqual, 8)

	problem, err := cfg.Problem()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, problem.Start, test.ShouldResemble, r2.Point{})
	test.That(t, problem.Goal, test.ShouldResemble, r2.Point{X: 6, Y: 10})
	test.That(t, problem.Region, test.ShouldResemble, spatialmath.Region{Min: r2.Point{X: -2, Y: -2}, Max: r2.Point{X: 15, Y: 15}})
	test.That(t, problem.Obstacles[1], test.ShouldResemble, spatialmath.Circle{Center: r2.Point{X: 3, Y: 6}, Radius: 2})

	opts, err := cfg.PlannerOptions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts.ExpandDis, test.ShouldEqual, 1.)
	test.That(t, opts.MaxIter, test.ShouldEqual, 3000)
	test.That(t, opts.RobotRadius, test.ShouldEqual, 0.2)
	test.That(t, opts.SmoothWindow, test.ShouldEqual, 5)
}

func TestReadSubstitutesEnvironment(t *testing.T) {
	t.Setenv("RRTPLAN_TEST_SEED", "7")
	path := filepath.Join(t.TempDir(), "problem.json")
	contents := `{
		"start": [1, 1],
		"goal": [4, 5],
		"region": {"min": [0, 0], "max": [10, 6]},
		"obstacles": [],
		"planner": {"seed": ${RRTPLAN_TEST_SEED}}
	}`
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	cfg, err := Read(path, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	opts, err := cfg.PlannerOptions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts.Seed, test.ShouldEqual, 7)

	region, err := cfg.SamplingRegion()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, region.Max, test.ShouldResemble, r2.Point{X: 10, Y: 6})
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFromReaderErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)
	for _, tc := range []struct {
		name     string
		contents string
		errMsg   string
	}{
		{"malformed", `{"start": [0, 0`, "cannot parse config"},
		{"unknown field", `{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2], "speed": 3}`, "unknown field"},
		{"no region", `{"start": [0, 0], "goal": [1, 1]}`, "one of rand_area or region is required"},
		{
			"both regions",
			`{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2], "region": {"min": [0, 0], "max": [2, 2]}}`,
			"only one of rand_area and region",
		},
		{"bad rand area", `{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2, 4]}`, "[min, max] pair"},
		{"negative radius", `{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2], "obstacles": [[1, 1, -1]]}`, "obstacles.0"},
		{"bad planner", `{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2], "planner": {"max_iter": -1}}`, "max_iter"},
		{
			"NaN resolution",
			`{"start": [0, 0], "goal": [1, 1], "rand_area": [0, 2], "planner": {"path_resolution": "NaN"}}`,
			"path_resolution",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader(tc.name, strings.NewReader(tc.contents), logger)
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errMsg)
		})
	}
}

func TestProblemOutsideRegion(t *testing.T) {
	cfg, err := FromReader("outside", strings.NewReader(`{"start": [0, 0], "goal": [9, 9], "rand_area": [0, 2]}`), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	_, err = cfg.Problem()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "goal")
}
