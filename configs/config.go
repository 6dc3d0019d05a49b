// Package configs provides library defaults loaded from an embedded YAML
// file, defaults.yaml.
package configs

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds all library default values (loaded from defaults.yaml at startup).
var Defaults LibDefaults

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic("fgr: invalid defaults.yaml: " + err.Error())
	}
}

// LibDefaults holds all configurable library defaults.
type LibDefaults struct {
	Placement PlacementDefaults `yaml:"placement"`
	IOR       IORDefaults       `yaml:"ior"`
	Output    OutputDefaults    `yaml:"output"`
}

// PlacementDefaults holds defaults for the placement planner.
type PlacementDefaults struct {
	NumRanks  int    `yaml:"num_ranks"`
	Partition string `yaml:"partition"`
	Strategy  string `yaml:"strategy"`
}

// IORDefaults holds defaults for the IOR shell generator.
type IORDefaults struct {
	Binary     string `yaml:"binary"`
	StripeSize string `yaml:"stripe_size"`
}

// OutputDefaults holds output location names. The subcommands do not read
// them: placement and rtgen take their output paths from their own flag
// defaults and file naming.
type OutputDefaults struct {
	Dir          string `yaml:"dir"`
	FGRFileName  string `yaml:"fgr_file_name"`
	IORShellName string `yaml:"ior_shell_name"`
}
