package writer

import (
	"fmt"
	"os"

	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
)

// Interface is the output-writing contract the CLI depends on, so commands
// can be tested without touching the filesystem. Grounded on the teacher's
// pkg/vcenter.ClientInterface / pkg/vm.CreatorInterface split between
// production implementation and test mock.
type Interface interface {
	WriteMapInfo(paths MapInfoPaths, topo *topology.Topology, layout *lnetost.Layout, routerClients map[int32][]int32) error
	WriteFGRFile(path string, t routetable.Table) error
	WriteIORShell(path string, in IORShellInput) error
}

// FileSystem is the production Interface implementation: it writes real
// files via this package's WriteMapInfo and WriteFGRFile functions and an
// IORShellGenerator.
type FileSystem struct {
	shellGen *IORShellGenerator
}

// NewFileSystem constructs a FileSystem writer, parsing the embedded IOR
// shell template once.
func NewFileSystem() (*FileSystem, error) {
	gen, err := NewIORShellGenerator()
	if err != nil {
		return nil, err
	}
	return &FileSystem{shellGen: gen}, nil
}

func (fs *FileSystem) WriteMapInfo(paths MapInfoPaths, topo *topology.Topology, layout *lnetost.Layout, routerClients map[int32][]int32) error {
	return WriteMapInfo(paths, topo, layout, routerClients)
}

func (fs *FileSystem) WriteFGRFile(path string, t routetable.Table) error {
	return WriteFGRFile(path, t)
}

func (fs *FileSystem) WriteIORShell(path string, in IORShellInput) error {
	content, err := fs.shellGen.Generate(in)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// writeFile writes content to path, truncating any existing file.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writer: write %s: %w", path, err)
	}
	return nil
}
