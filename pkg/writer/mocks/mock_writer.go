// Package mocks provides testify-based mock implementations of writer.Interface
// for testing CLI commands without touching the filesystem.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/writer"
)

// Interface is a mock for writer.Interface.
type Interface struct {
	mock.Mock
}

func (m *Interface) WriteMapInfo(paths writer.MapInfoPaths, topo *topology.Topology, layout *lnetost.Layout, routerClients map[int32][]int32) error {
	args := m.Called(paths, topo, layout, routerClients)
	return args.Error(0)
}

func (m *Interface) WriteFGRFile(path string, t routetable.Table) error {
	args := m.Called(path, t)
	return args.Error(0)
}

func (m *Interface) WriteIORShell(path string, in writer.IORShellInput) error {
	args := m.Called(path, in)
	return args.Error(0)
}
