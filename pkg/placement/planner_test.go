package placement

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/strategy"
)

// stubStrategy is a deterministic Strategy test double, mirroring the
// teacher's mocks in style but hand-written since the interface is tiny.
type stubStrategy struct {
	name  string
	ranks []strategy.Rank
	err   error
}

func (s stubStrategy) Name() string { return s.name }
func (s stubStrategy) Schedule(ctx context.Context, req strategy.Request) ([]strategy.Rank, error) {
	return s.ranks, s.err
}

func loadPlannerTopology(t *testing.T) *topology.Topology {
	t.Helper()
	content := "9000 c0-0c0s0 compute 0 0 0\n9001 c1-0c0s0 compute 1 0 0\n"
	path := filepath.Join(t.TempDir(), "topology.map")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	topo, err := topology.Load(path)
	require.NoError(t, err)
	return topo
}

func TestPlanReturnsNormalizedResult(t *testing.T) {
	topo := loadPlannerTopology(t)
	stub := stubStrategy{
		name: "stub",
		ranks: []strategy.Rank{
			{Client: 9000, Router: 1, LNET: 201, OST: 5, Cost: 104},
			{Client: 9001, Router: 1, LNET: 201, OST: 6, Cost: 108},
		},
	}

	p := NewPlanner().WithStrategy("stub", stub)
	result, err := p.Plan(context.Background(), Request{
		NumRanks:     2,
		StrategyName: "stub",
		Selector:     topology.SelectAtlas1,
		Topology:     topo,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.RunID)
	require.Equal(t, "stub", result.Strategy)
	require.Equal(t, "atlas1", result.Partition)
	require.Equal(t, 2, result.NumRanks)
	require.Len(t, result.Ranks, 2)
	require.NotEmpty(t, result.TopologyFingerprint)
}

func TestPlanRejectsUnknownStrategy(t *testing.T) {
	topo := loadPlannerTopology(t)
	p := NewPlanner()
	_, err := p.Plan(context.Background(), Request{NumRanks: 1, StrategyName: "missing", Topology: topo})
	require.Error(t, err)
}

func TestPlanPropagatesStrategyError(t *testing.T) {
	topo := loadPlannerTopology(t)
	stub := stubStrategy{name: "stub", err: &strategy.ErrSchedulerExhausted{Requested: 5, Selected: 1}}
	p := NewPlanner().WithStrategy("stub", stub)

	_, err := p.Plan(context.Background(), Request{NumRanks: 5, StrategyName: "stub", Topology: topo})
	require.Error(t, err)
}

func TestPlanRejectsDuplicateClientSelection(t *testing.T) {
	topo := loadPlannerTopology(t)
	stub := stubStrategy{
		name: "stub",
		ranks: []strategy.Rank{
			{Client: 9000},
			{Client: 9000},
		},
	}
	p := NewPlanner().WithStrategy("stub", stub)

	_, err := p.Plan(context.Background(), Request{NumRanks: 2, StrategyName: "stub", Topology: topo})
	require.Error(t, err)
}
