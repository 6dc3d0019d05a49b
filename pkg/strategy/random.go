package strategy

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Random is the baseline strategy: a uniform random sample of N distinct
// clients from the compute set. OST assignment is left to the caller — it
// emits only the client list, with Router/LNET/OST left zero.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Schedule(ctx context.Context, req Request) ([]Rank, error) {
	clients := req.Topology.ComputeNIDs()
	if req.NumRanks > len(clients) {
		return nil, fmt.Errorf("placement: requested %d ranks but only %d compute clients available", req.NumRanks, len(clients))
	}

	seed := req.Seed
	if !req.HasSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1|1)))

	// Partial Fisher-Yates: shuffle only as many positions as needed.
	pool := append([]int32(nil), clients...)
	for i := 0; i < req.NumRanks; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	ranks := make([]Rank, req.NumRanks)
	for i := 0; i < req.NumRanks; i++ {
		ranks[i] = Rank{Client: pool[i]}
	}
	return ranks, nil
}
