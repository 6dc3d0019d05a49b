package main

import (
	"github.com/spf13/cobra"

	"github.com/nersc/fgr/internal/cost"
	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/writer"
)

var (
	mapinfoFGRFile string
	mapinfoOutDir  string
)

var mapinfoCmd = &cobra.Command{
	Use:           "mapinfo",
	Short:         "Emit lnet2ost, ost2lnet, atlas router, and rtr2client map files",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMap(); err != nil {
			return err
		}
		return runMapinfo()
	},
}

func init() {
	mapinfoCmd.Flags().StringVar(&mapinfoFGRFile, "fgrfile", "", "Path to an fgr route file used to derive router client counts (optional)")
	mapinfoCmd.Flags().StringVar(&mapinfoOutDir, "out", ".", "Directory the map files are written into")
}

func runMapinfo() error {
	log := getLogger()

	topo, err := topology.Load(mapPath)
	if err != nil {
		return err
	}
	log.Info("loaded topology map", "map", mapPath, "routers", len(topo.Routers))

	layout := lnetost.Build()

	var routerClients map[int32][]int32
	if mapinfoFGRFile != "" {
		engine, err := cost.Build(topo, mapinfoFGRFile)
		if err != nil {
			return err
		}
		routerClients = engine.RouterClients
	}

	fs, err := writer.NewFileSystem()
	if err != nil {
		return err
	}
	paths := writer.DefaultMapInfoPaths(mapinfoOutDir)
	if err := fs.WriteMapInfo(paths, topo, layout, routerClients); err != nil {
		return err
	}

	log.Info("wrote map info files", "dir", mapinfoOutDir)
	return nil
}
