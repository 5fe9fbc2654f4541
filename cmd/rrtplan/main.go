// Package main is the rrtplan command itself.
package main

import (
	"os"

	"go.viam.com/rrtplan/cli"
	"go.viam.com/rrtplan/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger("rrtplan").Error(err)
		os.Exit(1)
	}
}
