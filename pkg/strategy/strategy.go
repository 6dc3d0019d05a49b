// Package strategy implements the two rank-placement strategies: the
// cost-driven hybrid scheduler and the random baseline. Grounded on the
// teacher's Provisioner interface (pkg/profile): one small interface, one
// implementation per concern, selected by the caller rather than by the
// package itself.
package strategy

import (
	"context"

	"github.com/nersc/fgr/internal/cost"
	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
)

// Rank is one assigned (client, router, LNET, OST) tuple.
type Rank struct {
	Client int32
	Router int32
	LNET   int
	OST    int
	Cost   int
}

// Request carries everything a Strategy needs to produce N ranks.
type Request struct {
	NumRanks  int
	Selector  topology.Selector
	Topology  *topology.Topology
	Engine    *cost.Engine   // nil for the random strategy
	Layout    *lnetost.Layout // nil for the random strategy
	Seed      int64          // used only when HasSeed is set; otherwise seeded from system time
	HasSeed   bool
}

// Strategy is the placement-scheduling contract.
type Strategy interface {
	Name() string
	Schedule(ctx context.Context, req Request) ([]Rank, error)
}
