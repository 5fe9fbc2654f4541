// Package cli contains the rrtplan command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	debugFlag    = "debug"
	logLevelFlag = "log-level"
	logFileFlag  = "log-file"

	configFlag  = "config"
	seedFlag    = "seed"
	outFlag     = "out"
	formatFlag  = "format"
	trialsFlag  = "trials"
	plannerFlag = "planner"
)

var configFlagDef = &cli.StringFlag{
	Name:     configFlag,
	Aliases:  []string{"c"},
	Usage:    "load the planning problem from `FILE`",
	Required: true,
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "rrtplan",
		Usage:           "plan collision free paths through 2D circular obstacle fields with RRT*",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging, same as --log-level debug",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Value: "info",
				Usage: "minimum `LEVEL` logged: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  logFileFlag,
				Usage: "also write logs to `FILE`, rotated every 10MB",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "plan",
				Usage:     "plan a path for a single problem",
				UsageText: "rrtplan plan --config <problem.json> [--out <path>] [--format json|csv] [--seed <n>]",
				Flags: []cli.Flag{
					configFlagDef,
					&cli.StringFlag{
						Name:  outFlag,
						Usage: "write the waypoints to `FILE`",
					},
					&cli.StringFlag{
						Name:  formatFlag,
						Usage: "waypoint file format, json or csv. Defaults to the extension of --out",
					},
					&cli.Int64Flag{
						Name:  seedFlag,
						Usage: "override the sampler seed of the problem file",
					},
				},
				Action: PlanAction,
			},
			{
				Name:      "bench",
				Usage:     "run many seeded trials of a problem in parallel and summarize them",
				UsageText: "rrtplan bench --config <problem.json> [--trials <n>] [--seed <first seed>]",
				Flags: []cli.Flag{
					configFlagDef,
					&cli.IntFlag{
						Name:  trialsFlag,
						Value: 20,
						Usage: "number of trials",
					},
					&cli.Int64Flag{
						Name:  seedFlag,
						Value: 1,
						Usage: "seed of the first trial, later trials count up from it",
					},
				},
				Action: BenchAction,
			},
			{
				Name:  "schema",
				Usage: "print the JSON schema of problem files",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  plannerFlag,
						Usage: "print the schema of the planner section only",
					},
				},
				Action: SchemaAction,
			},
		},
	}
}
