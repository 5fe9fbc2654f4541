package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"go.viam.com/rrtplan/motionplan"
)

// Schema returns the JSON schema of problem config files.
func Schema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&Config{}), "", "  ")
}

// PlannerSchema returns the JSON schema of the planner section of a config file.
func PlannerSchema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&motionplan.PlannerOptions{}), "", "  ")
}
