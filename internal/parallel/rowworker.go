// Package parallel runs the route generator across a thread pool of 8
// workers, one per cabinet row. Replaces the original process-fork driver:
// each worker reads the shared, read-only Topology and owns its own partial
// result; no cross-worker synchronization beyond the final join.
package parallel

import (
	"sync"

	"github.com/nersc/fgr/internal/routeselect"
	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
)

// OnRowDone is invoked once per row, in ascending row order, after all
// workers have finished — typically used to persist a private per-row file
// before the rows are concatenated into the merged table.
type OnRowDone func(row int, partial routetable.Table) error

// BuildRoutes partitions the compute NID space by cabinet row, computes each
// row's route bindings concurrently, then joins the results in ascending row
// order. The merged table is identical, client for client, to what BuildAll
// would produce serially.
func BuildRoutes(topo *topology.Topology, onRow OnRowDone) (routetable.Table, error) {
	buckets := make([][]int32, topology.RowCount)
	for _, nid := range topo.ComputeNIDs() {
		node, ok := topo.LookupNID(nid)
		if !ok {
			continue
		}
		row := node.Cname.Row
		if row < 0 || row >= topology.RowCount {
			continue
		}
		buckets[row] = append(buckets[row], nid)
	}

	results := make([]routetable.Table, topology.RowCount)
	errs := make([]error, topology.RowCount)

	var wg sync.WaitGroup
	for row := 0; row < topology.RowCount; row++ {
		row := row
		wg.Add(1)
		go func() {
			defer wg.Done()
			t, err := routeselect.BuildForNIDs(topo, buckets[row])
			if err != nil {
				errs[row] = err
				return
			}
			results[row] = t
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := make(routetable.Table)
	for row := 0; row < topology.RowCount; row++ {
		if onRow != nil {
			if err := onRow(row, results[row]); err != nil {
				return nil, err
			}
		}
		merged.Merge(results[row])
	}
	return merged, nil
}
