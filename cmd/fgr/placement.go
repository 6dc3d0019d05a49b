package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nersc/fgr/configs"
	"github.com/nersc/fgr/internal/cost"
	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/internal/wizard"
	"github.com/nersc/fgr/pkg/placement"
	"github.com/nersc/fgr/pkg/strategy"
	"github.com/nersc/fgr/pkg/writer"
)

var (
	placementFGRFile    string
	placementNumRanks   int
	placementPartition  string
	placementStrategy   string
	placementSeed       int64
	placementHasSeed    bool
	placementOut        string
	placementUsername   string
	placementIORBin     string
	placementStripeSize string
	placementFailed     string
	placementNodefile   string
)

var placementCmd = &cobra.Command{
	Use:           "placement",
	Short:         "Plan client placement across the eligible router set",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		if placementFGRFile == "" {
			return &userError{msg: "no fgr file given", hint: "pass --fgrfile <path>"}
		}
		placementHasSeed = cmd.Flags().Changed("seed")
		return runPlacement(cmd.Context())
	},
}

func init() {
	ior := configs.Defaults.IOR

	placementCmd.Flags().StringVar(&placementFGRFile, "fgrfile", "", "Path to the fgr route file that defines the client/router cost graph")
	placementCmd.Flags().IntVar(&placementNumRanks, "numranks", 0, "Number of ranks to place (0 triggers the wizard or the configured default)")
	placementCmd.Flags().StringVar(&placementPartition, "partition", "", "Partition selector: atlas1, atlas2, or atlas")
	placementCmd.Flags().StringVar(&placementStrategy, "strategy", "", "Placement strategy: hybrid or random")
	placementCmd.Flags().Int64Var(&placementSeed, "seed", 0, "Seed for the random strategy (default: system time)")
	placementCmd.Flags().StringVar(&placementOut, "out", ".", "Directory the placement result and IOR shell are written to")
	placementCmd.Flags().StringVar(&placementUsername, "username", "", "Username recorded in the IOR run directory path")
	placementCmd.Flags().StringVar(&placementIORBin, "iorbin", "", "Path to the IOR binary ("+ior.Binary+" by default)")
	placementCmd.Flags().StringVar(&placementStripeSize, "stripesize", "", "Lustre stripe/IOR transfer size ("+ior.StripeSize+" by default)")
	placementCmd.Flags().StringVar(&placementFailed, "failed", "", "Path to a file listing NIDs to exclude from the client set")
	placementCmd.Flags().StringVar(&placementNodefile, "nodefile", "", "Path to a file listing the exact client NID set to use")
}

func runPlacement(ctx context.Context) error {
	log := getLogger()

	if placementNumRanks == 0 || placementPartition == "" || placementStrategy == "" || placementStripeSize == "" || placementIORBin == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			filled, err := wizard.PromptPlacement(wizard.PlacementFlags{
				NumRanks:   placementNumRanks,
				Partition:  placementPartition,
				Strategy:   placementStrategy,
				StripeSize: placementStripeSize,
				IORBin:     placementIORBin,
			})
			if err != nil {
				return err
			}
			placementNumRanks = filled.NumRanks
			placementPartition = filled.Partition
			placementStrategy = filled.Strategy
			placementStripeSize = filled.StripeSize
			placementIORBin = filled.IORBin
		} else {
			if placementNumRanks == 0 {
				placementNumRanks = configs.Defaults.Placement.NumRanks
			}
			if placementPartition == "" {
				placementPartition = configs.Defaults.Placement.Partition
			}
			if placementStrategy == "" {
				placementStrategy = configs.Defaults.Placement.Strategy
			}
			if placementStripeSize == "" {
				placementStripeSize = configs.Defaults.IOR.StripeSize
			}
			if placementIORBin == "" {
				placementIORBin = configs.Defaults.IOR.Binary
			}
		}
	}

	topo, err := topology.Load(mapPath)
	if err != nil {
		return err
	}
	if placementNodefile != "" {
		nids, err := topology.LoadNIDList(placementNodefile)
		if err != nil {
			return err
		}
		topo.ReplaceComputeSet(nids)
	}
	if placementFailed != "" {
		nids, err := topology.LoadNIDList(placementFailed)
		if err != nil {
			return err
		}
		topo.ApplyFailedNodes(nids)
	}

	engine, err := cost.Build(topo, placementFGRFile)
	if err != nil {
		return err
	}
	layout := lnetost.Build()

	planner := placement.NewPlanner()
	result, err := planner.Plan(ctx, placement.Request{
		NumRanks:     placementNumRanks,
		StrategyName: placementStrategy,
		Selector:     topology.Selector(placementPartition),
		Topology:     topo,
		Engine:       engine,
		Layout:       layout,
		Seed:         placementSeed,
		HasSeed:      placementHasSeed,
	})
	if _, exhausted := err.(*strategy.ErrSchedulerExhausted); exhausted {
		return &userError{msg: err.Error(), hint: "reduce --numranks or widen --partition"}
	}
	if err != nil {
		return err
	}

	log.Info("placement complete", "run_id", result.RunID, "strategy", result.Strategy,
		"partition", result.Partition, "ranks", result.NumRanks)

	if err := os.MkdirAll(placementOut, 0o755); err != nil {
		return fmt.Errorf("placement: create output dir %s: %w", placementOut, err)
	}

	resultPath := filepath.Join(placementOut, "placement-"+result.RunID+".yaml")
	if err := result.Save(resultPath); err != nil {
		return err
	}
	log.Info("wrote placement result", "path", resultPath)

	fs, err := writer.NewFileSystem()
	if err != nil {
		return err
	}
	runDir := placementOut
	if placementUsername != "" {
		runDir = filepath.Join(placementOut, placementUsername, result.RunID)
		if err := os.MkdirAll(runDir, 0o755); err != nil {
			return fmt.Errorf("placement: create run dir %s: %w", runDir, err)
		}
	}
	shellPath := filepath.Join(placementOut, "ior-"+result.RunID+".sh")
	err = fs.WriteIORShell(shellPath, writer.IORShellInput{
		RunID:      result.RunID,
		Strategy:   result.Strategy,
		Partition:  result.Partition,
		NumRanks:   result.NumRanks,
		Path:       runDir,
		IORBin:     placementIORBin,
		StripeSize: placementStripeSize,
		Ranks:      result.Ranks,
	})
	if err != nil {
		return err
	}
	log.Info("wrote IOR launch script", "path", shellPath)

	return nil
}
