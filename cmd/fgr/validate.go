package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nersc/fgr/internal/routeselect"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/writer"
)

var validateFGRFile string

var validateCmd = &cobra.Command{
	Use:           "validate",
	Short:         "Cross-check a persisted route table against a fresh recomputation",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		if validateFGRFile == "" {
			return &userError{msg: "no fgr file given", hint: "pass --fgrfile <path>"}
		}
		return runValidate()
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFGRFile, "fgrfile", "", "Path to the persisted fgr route file to validate")
}

func runValidate() error {
	log := getLogger()

	topo, err := topology.Load(mapPath)
	if err != nil {
		return err
	}

	persisted, err := writer.ReadFGRFile(validateFGRFile)
	if err != nil {
		return err
	}

	mismatches, err := routeselect.Validate(topo, persisted)
	if err != nil {
		return err
	}

	if len(mismatches) == 0 {
		log.Info("route table matches a fresh recomputation", "clients", len(persisted.Clients()))
		return nil
	}

	log.Info("route table mismatches found", "count", len(mismatches))
	for _, m := range mismatches {
		fmt.Printf("  client=%d lnet=%d persisted=%d recomputed=%d\n", m.ClientNID, m.LNET, m.Persisted, m.Recomputed)
	}
	return &userError{msg: fmt.Sprintf("%d route mismatches found", len(mismatches))}
}
