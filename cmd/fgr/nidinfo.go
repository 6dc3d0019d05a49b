package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nersc/fgr/internal/topology"
)

var nidinfoCmd = &cobra.Command{
	Use:           "nidinfo <nid>",
	Short:         "Print the topology record for a single NID",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		val, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return &userError{msg: "invalid nid " + args[0]}
		}
		return runNidinfo(int32(val))
	},
}

func runNidinfo(nid int32) error {
	log := getLogger()

	topo, err := topology.Load(mapPath)
	if err != nil {
		return err
	}

	node, ok := topo.LookupNID(nid)
	if !ok {
		return &userError{msg: "nid not found in topology map"}
	}

	log.Info("node", "nid", node.NID, "cname", node.Cname.String(), "type", string(node.NodeType),
		"x", node.Coords.X, "y", node.Coords.Y, "z", node.Coords.Z)

	if router, ok := topo.RouterByNID(nid); ok {
		log.Info("router", "nid", router.NID, "partition", string(router.Partition),
			"lnet", router.LNET, "group", topology.GroupLabel(router.Group))
	}

	return nil
}
