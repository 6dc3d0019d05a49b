package placement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nersc/fgr/internal/cost"
	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
	"github.com/nersc/fgr/pkg/strategy"
)

// Planner ties together the components a placement run needs and dispatches
// to the requested strategy. Strategies are injectable (tests substitute a
// stub), mirroring the teacher's bootstrapper func-field pattern.
type Planner struct {
	strategies map[string]strategy.Strategy
}

// NewPlanner returns a Planner wired with the production strategies.
func NewPlanner() *Planner {
	return &Planner{
		strategies: map[string]strategy.Strategy{
			"hybrid": strategy.Hybrid{},
			"random": strategy.Random{},
		},
	}
}

// WithStrategy registers or overrides a named strategy; used by tests to
// inject a deterministic stub.
func (p *Planner) WithStrategy(name string, s strategy.Strategy) *Planner {
	p.strategies[name] = s
	return p
}

// Request describes one placement run.
type Request struct {
	NumRanks     int
	StrategyName string
	Selector     topology.Selector
	Topology     *topology.Topology
	Engine       *cost.Engine
	Layout       *lnetost.Layout
	Seed         int64
	HasSeed      bool
}

// Plan executes a placement run and returns its normalized, persistable result.
func (p *Planner) Plan(ctx context.Context, req Request) (Result, error) {
	strat, ok := p.strategies[req.StrategyName]
	if !ok {
		return Result{}, fmt.Errorf("placement: unknown strategy %q", req.StrategyName)
	}

	ranks, err := strat.Schedule(ctx, strategy.Request{
		NumRanks: req.NumRanks,
		Selector: req.Selector,
		Topology: req.Topology,
		Engine:   req.Engine,
		Layout:   req.Layout,
		Seed:     req.Seed,
		HasSeed:  req.HasSeed,
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		RunID:               uuid.NewString(),
		Strategy:            strat.Name(),
		Partition:           string(req.Selector),
		NumRanks:            len(ranks),
		TopologyFingerprint: req.Topology.Fingerprint(),
		Ranks:               fromRanks(ranks),
	}
	if err := result.Validate(); err != nil {
		return Result{}, err
	}
	return result, nil
}
