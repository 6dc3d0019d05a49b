package strategy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nersc/fgr/internal/topology"
)

func loadRandomTopology(t *testing.T) *topology.Topology {
	t.Helper()
	content := `
9000 c0-0c0s0 compute 0 0 0
9001 c1-0c0s0 compute 1 0 0
9002 c2-0c0s0 compute 2 0 0
9003 c3-0c0s0 compute 3 0 0
`
	path := filepath.Join(t.TempDir(), "topology.map")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	topo, err := topology.Load(path)
	require.NoError(t, err)
	return topo
}

func TestRandomScheduleDistinctClients(t *testing.T) {
	topo := loadRandomTopology(t)
	r := Random{}
	require.Equal(t, "random", r.Name())

	ranks, err := r.Schedule(context.Background(), Request{
		NumRanks: 3,
		Topology: topo,
		Seed:     42,
		HasSeed:  true,
	})
	require.NoError(t, err)
	require.Len(t, ranks, 3)

	seen := make(map[int32]bool, len(ranks))
	for _, rk := range ranks {
		require.False(t, seen[rk.Client], "client %d selected twice", rk.Client)
		seen[rk.Client] = true
		require.Zero(t, rk.Router)
		require.Zero(t, rk.OST)
	}
}

func TestRandomScheduleIsSeedReproducible(t *testing.T) {
	topo := loadRandomTopology(t)
	r := Random{}

	first, err := r.Schedule(context.Background(), Request{NumRanks: 2, Topology: topo, Seed: 7, HasSeed: true})
	require.NoError(t, err)
	second, err := r.Schedule(context.Background(), Request{NumRanks: 2, Topology: topo, Seed: 7, HasSeed: true})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRandomScheduleRejectsOversizedRequest(t *testing.T) {
	topo := loadRandomTopology(t)
	r := Random{}

	_, err := r.Schedule(context.Background(), Request{NumRanks: 100, Topology: topo, Seed: 1, HasSeed: true})
	require.Error(t, err)
}
