package cost

import (
	"fmt"
	"os"
	"sort"

	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
)

// Engine holds the two cost indices computed from the fgr adjacency file:
// the direct client->router->cost map, and its inverse, router->cost-ordered
// client list (the permutation the placement scheduler consumes).
type Engine struct {
	ClientCost    map[int32]map[int32]int
	RouterClients map[int32][]int32
}

// Build reads the fgr adjacency file and computes cost only for the
// (client, router) pairs it lists, per §4.2. Iteration order over the file
// is the sole source of tie-break ordering, so the result is deterministic
// across runs given identical file contents.
func Build(topo *topology.Topology, fgrPath string) (*Engine, error) {
	f, err := os.Open(fgrPath)
	if err != nil {
		return nil, fmt.Errorf("cost: open fgr file %s: %w", fgrPath, err)
	}
	defer f.Close()

	adjacency, order, err := routetable.ParseFGROrdered(f)
	if err != nil {
		return nil, fmt.Errorf("cost: parse fgr file %s: %w", fgrPath, err)
	}

	e := &Engine{
		ClientCost:    make(map[int32]map[int32]int),
		RouterClients: make(map[int32][]int32),
	}

	type bucket struct {
		cost    int
		clients []int32
	}
	routerBuckets := make(map[int32]map[int]*bucket)

	// Iterate in file-appearance order, not map/NID order: §4.2 requires the
	// router-client tie-break within a cost bucket to follow first-appearance
	// in the input, and the placement scheduler's determinism depends on it.
	for _, client := range order {
		clientNode, ok := topo.LookupNID(client)
		if !ok {
			return nil, fmt.Errorf("cost: fgr file references unknown client nid %d", client)
		}
		for _, b := range adjacency[client] {
			routerNode, ok := topo.LookupNID(b.RouterNID)
			if !ok {
				return nil, fmt.Errorf("cost: fgr file references unknown router nid %d", b.RouterNID)
			}
			c := Weighted(
				Coords3{X: clientNode.Coords.X, Y: clientNode.Coords.Y, Z: clientNode.Coords.Z},
				Coords3{X: routerNode.Coords.X, Y: routerNode.Coords.Y, Z: routerNode.Coords.Z},
			)

			if e.ClientCost[client] == nil {
				e.ClientCost[client] = make(map[int32]int)
			}
			e.ClientCost[client][b.RouterNID] = c

			byCost, ok := routerBuckets[b.RouterNID]
			if !ok {
				byCost = make(map[int]*bucket)
				routerBuckets[b.RouterNID] = byCost
			}
			bk, ok := byCost[c]
			if !ok {
				bk = &bucket{cost: c}
				byCost[c] = bk
			}
			bk.clients = append(bk.clients, client)
		}
	}

	for router, byCost := range routerBuckets {
		costs := make([]int, 0, len(byCost))
		for c := range byCost {
			costs = append(costs, c)
		}
		sort.Ints(costs)
		var ordered []int32
		for _, c := range costs {
			ordered = append(ordered, byCost[c].clients...)
		}
		e.RouterClients[router] = ordered
	}

	return e, nil
}
