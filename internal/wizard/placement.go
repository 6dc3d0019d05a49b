// Package wizard prompts interactively for placement flags the caller left
// unset, using survey/v2 the way the teacher's node and Talos wizards do.
// It never runs on a non-interactive stdin; callers check that first.
package wizard

import (
	"fmt"
	"strconv"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/nersc/fgr/configs"
)

// PlacementFlags mirrors the subset of the placement command's flags a user
// might omit on the command line.
type PlacementFlags struct {
	NumRanks  int
	Partition string
	Strategy  string
	StripeSize string
	IORBin    string
}

// IsEmpty reports whether none of the fields were set by the caller.
func (f PlacementFlags) IsEmpty() bool {
	return f.NumRanks == 0 && f.Partition == "" && f.Strategy == "" && f.StripeSize == "" && f.IORBin == ""
}

// PromptPlacement fills in any zero-valued field of f by asking the user,
// defaulting to the library's configured defaults.
func PromptPlacement(f PlacementFlags) (PlacementFlags, error) {
	d := configs.Defaults.Placement
	ior := configs.Defaults.IOR

	if f.NumRanks == 0 {
		var answer string
		q := &survey.Input{Message: "Number of ranks:", Default: strconv.Itoa(d.NumRanks)}
		if err := survey.AskOne(q, &answer); err != nil {
			return f, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return f, fmt.Errorf("wizard: invalid rank count %q: %w", answer, err)
		}
		f.NumRanks = n
	}

	if f.Partition == "" {
		q := &survey.Select{
			Message: "Partition:",
			Options: []string{"atlas1", "atlas2", "atlas"},
			Default: d.Partition,
		}
		if err := survey.AskOne(q, &f.Partition); err != nil {
			return f, err
		}
	}

	if f.Strategy == "" {
		q := &survey.Select{
			Message: "Placement strategy:",
			Options: []string{"hybrid", "random"},
			Default: d.Strategy,
		}
		if err := survey.AskOne(q, &f.Strategy); err != nil {
			return f, err
		}
	}

	if f.StripeSize == "" {
		q := &survey.Input{Message: "IOR stripe size:", Default: ior.StripeSize}
		if err := survey.AskOne(q, &f.StripeSize); err != nil {
			return f, err
		}
	}

	if f.IORBin == "" {
		q := &survey.Input{Message: "IOR binary path:", Default: ior.Binary}
		if err := survey.AskOne(q, &f.IORBin); err != nil {
			return f, err
		}
	}

	return f, nil
}
