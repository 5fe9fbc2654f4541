package cli

import (
	"github.com/urfave/cli/v2"

	"go.viam.com/rrtplan/config"
)

// SchemaAction prints the JSON schema of problem files, or of the planner section with --planner.
func SchemaAction(c *cli.Context) error {
	schema := config.Schema
	if c.Bool(plannerFlag) {
		schema = config.PlannerSchema
	}
	out, err := schema()
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", out)
	return nil
}
