package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
)

func loadWriterTopology(t *testing.T) *topology.Topology {
	t.Helper()
	content := `
5000 c7-2c2s0n0 service 0 0 0
5001 c7-2c2s0n1 service 0 0 0
5002 c7-2c2s0n2 service 0 0 0
5003 c7-2c2s0n3 service 0 0 0
9000 c0-0c0s0 compute 0 0 0
`
	path := filepath.Join(t.TempDir(), "topology.map")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write topology map: %v", err)
	}
	topo, err := topology.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return topo
}

func TestWriteLNET2OSTCoversAllLNETs(t *testing.T) {
	layout := lnetost.Build()
	var sb strings.Builder
	if err := WriteLNET2OST(&sb, layout); err != nil {
		t.Fatalf("WriteLNET2OST() failed: %v", err)
	}

	out := sb.String()
	if got := strings.Count(out, "\n\n"); got != lnetost.LNETCount {
		t.Errorf("WriteLNET2OST() wrote %d blank-line separators, want %d", got, lnetost.LNETCount)
	}
	if !strings.HasPrefix(out, "201 ") {
		t.Errorf("WriteLNET2OST() first line = %q, want it to start with %q", out[:20], "201 ")
	}
}

func TestWriteOST2LNETCoversAllOSTs(t *testing.T) {
	layout := lnetost.Build()
	var sb strings.Builder
	if err := WriteOST2LNET(&sb, layout); err != nil {
		t.Fatalf("WriteOST2LNET() failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != lnetost.OSTCount {
		t.Fatalf("WriteOST2LNET() wrote %d lines, want %d", len(lines), lnetost.OSTCount)
	}
}

func TestWriteAtlasRoutersFiltersByPartition(t *testing.T) {
	topo := loadWriterTopology(t)

	var atlas1, atlas2 strings.Builder
	if err := WriteAtlasRouters(&atlas1, topo, topology.Atlas1); err != nil {
		t.Fatalf("WriteAtlasRouters(atlas1) failed: %v", err)
	}
	if err := WriteAtlasRouters(&atlas2, topo, topology.Atlas2); err != nil {
		t.Fatalf("WriteAtlasRouters(atlas2) failed: %v", err)
	}

	if strings.Count(atlas1.String(), "\n") != 2 {
		t.Errorf("atlas1 router dump has %d lines, want 2 (n0 and n2)", strings.Count(atlas1.String(), "\n"))
	}
	if strings.Count(atlas2.String(), "\n") != 2 {
		t.Errorf("atlas2 router dump has %d lines, want 2 (n1 and n3)", strings.Count(atlas2.String(), "\n"))
	}
}

func TestWriteMapInfoProducesAllFiles(t *testing.T) {
	topo := loadWriterTopology(t)
	layout := lnetost.Build()
	dir := t.TempDir()
	paths := DefaultMapInfoPaths(dir)

	routerClients := map[int32][]int32{5000: {9000}}
	if err := WriteMapInfo(paths, topo, layout, routerClients); err != nil {
		t.Fatalf("WriteMapInfo() failed: %v", err)
	}

	for _, p := range []string{paths.LNET2OST, paths.OST2LNET, paths.Atlas1Rtr, paths.Atlas2Rtr, paths.Rtr2Client} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected output file %s to exist: %v", p, err)
		}
	}

	content, err := os.ReadFile(paths.Rtr2Client)
	if err != nil {
		t.Fatalf("read rtr2client: %v", err)
	}
	if !strings.Contains(string(content), "5000 1") {
		t.Errorf("rtr2client content = %q, want it to contain %q", content, "5000 1")
	}
}
