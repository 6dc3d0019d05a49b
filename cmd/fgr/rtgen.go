package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nersc/fgr/internal/parallel"
	"github.com/nersc/fgr/internal/routeselect"
	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/writer"
)

var rtgenOut string
var rtgenFailed string
var rtgenNodefile string

var rtgenCmd = &cobra.Command{
	Use:           "rtgen",
	Short:         "Generate the client route table (node2route)",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var rtgensCmd = &cobra.Command{
	Use:           "rtgens",
	Short:         "Generate the route table serially",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		topo, err := loadTopologyForRtgen()
		if err != nil {
			return err
		}
		log := getLogger()
		table, err := routeselect.BuildAll(topo)
		if err != nil {
			return err
		}
		log.Info("generated route table", "clients", len(table))
		return writeRouteTable(table)
	},
}

var rtgenpCmd = &cobra.Command{
	Use:           "rtgenp",
	Short:         "Generate the route table across 8 row workers",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		topo, err := loadTopologyForRtgen()
		if err != nil {
			return err
		}
		log := getLogger()
		table, err := parallel.BuildRoutes(topo, func(row int, partial routetable.Table) error {
			log.Info("row worker finished", "row", row, "clients", len(partial))
			return nil
		})
		if err != nil {
			return err
		}
		log.Info("generated route table", "clients", len(table))
		return writeRouteTable(table)
	},
}

func init() {
	for _, c := range []*cobra.Command{rtgensCmd, rtgenpCmd} {
		c.Flags().StringVar(&rtgenOut, "fgrfile", "route.fgr", "Path the generated route table is written to")
		c.Flags().StringVar(&rtgenFailed, "failed", "", "Path to a file listing NIDs to exclude from the client set")
		c.Flags().StringVar(&rtgenNodefile, "nodefile", "", "Path to a file listing the exact client NID set to use")
	}
}

func loadTopologyForRtgen() (*topology.Topology, error) {
	topo, err := topology.Load(mapPath)
	if err != nil {
		return nil, err
	}
	if rtgenNodefile != "" {
		nids, err := topology.LoadNIDList(rtgenNodefile)
		if err != nil {
			return nil, err
		}
		topo.ReplaceComputeSet(nids)
	}
	if rtgenFailed != "" {
		nids, err := topology.LoadNIDList(rtgenFailed)
		if err != nil {
			return nil, err
		}
		topo.ApplyFailedNodes(nids)
	}
	return topo, nil
}

func writeRouteTable(table routetable.Table) error {
	fs, err := writer.NewFileSystem()
	if err != nil {
		return err
	}
	if err := fs.WriteFGRFile(rtgenOut, table); err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", rtgenOut)
	return nil
}
