package strategy

import (
	"context"
	"fmt"
)

// ErrSchedulerExhausted is returned when more ranks are requested than the
// eligible router set can supply — a router's cost-ordered client queue runs
// dry while ranks are still needed and no other eligible router can help.
type ErrSchedulerExhausted struct {
	Requested int
	Selected  int
}

func (e *ErrSchedulerExhausted) Error() string {
	return fmt.Sprintf("placement: scheduler exhausted eligible routers at %d/%d ranks selected", e.Selected, e.Requested)
}

// Hybrid is the cost-driven strategy: round-robins across eligible routers,
// pulling the next unassigned client from each router's cost-ascending
// queue, and rotates each LNET's OST ring on every selection through it.
type Hybrid struct{}

func (Hybrid) Name() string { return "hybrid" }

func (Hybrid) Schedule(ctx context.Context, req Request) ([]Rank, error) {
	if req.Engine == nil || req.Layout == nil {
		return nil, fmt.Errorf("placement: hybrid strategy requires a cost engine and LNET/OST layout")
	}

	eligible, err := req.Topology.RoutersFor(req.Selector)
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("placement: no eligible routers for selector %q", req.Selector)
	}

	cursors := make(map[int32]int, len(eligible))
	selected := make(map[int32]struct{}, req.NumRanks)
	ostRings := make(map[int][]int)

	nextClient := func(routerNID int32) (int32, bool) {
		queue := req.Engine.RouterClients[routerNID]
		cursor := cursors[routerNID]
		for cursor < len(queue) {
			candidate := queue[cursor]
			cursor++
			if _, already := selected[candidate]; !already {
				cursors[routerNID] = cursor
				return candidate, true
			}
		}
		cursors[routerNID] = cursor
		return 0, false
	}

	popOST := func(lnet int) int {
		ring, ok := ostRings[lnet]
		if !ok {
			ring = req.Layout.OSTsForLNET(lnet)
			ostRings[lnet] = ring
		}
		if len(ring) == 0 {
			return 0
		}
		front := ring[0]
		ostRings[lnet] = append(ring[1:], front)
		return front
	}

	var ranks []Rank
	noProgress := 0
	pos := 0
	for len(ranks) < req.NumRanks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		router := eligible[pos%len(eligible)]
		pos++

		client, ok := nextClient(router.NID)
		if !ok {
			noProgress++
			if noProgress >= len(eligible) {
				return nil, &ErrSchedulerExhausted{Requested: req.NumRanks, Selected: len(ranks)}
			}
			continue
		}
		noProgress = 0
		selected[client] = struct{}{}

		ost := popOST(router.LNET)
		ranks = append(ranks, Rank{
			Client: client,
			Router: router.NID,
			LNET:   router.LNET,
			OST:    ost,
			Cost:   req.Engine.ClientCost[client][router.NID],
		})
	}

	if len(selected) != req.NumRanks {
		return nil, fmt.Errorf("placement: duplicate selection invariant violated: %d distinct clients for %d ranks", len(selected), req.NumRanks)
	}

	return ranks, nil
}
