package routeselect

import (
	"fmt"

	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
)

// BuildAll runs Select for every compute node in the topology, in ascending
// NID order, producing a complete route table. Used by the serial (rtgens)
// driver and by Validate.
func BuildAll(topo *topology.Topology) (routetable.Table, error) {
	t := make(routetable.Table)
	for _, nid := range topo.ComputeNIDs() {
		node, ok := topo.LookupNID(nid)
		if !ok {
			return nil, fmt.Errorf("node2route: compute nid %d missing from topology", nid)
		}
		bindings, err := Select(topo, node)
		if err != nil {
			return nil, err
		}
		t[nid] = bindings
	}
	return t, nil
}

// BuildForNIDs runs Select for exactly the given NIDs, preserving the slice
// order. Used by the row-partitioned parallel driver, where each worker
// owns a disjoint NID subset.
func BuildForNIDs(topo *topology.Topology, nids []int32) (routetable.Table, error) {
	t := make(routetable.Table)
	for _, nid := range nids {
		node, ok := topo.LookupNID(nid)
		if !ok {
			return nil, fmt.Errorf("node2route: compute nid %d missing from topology", nid)
		}
		bindings, err := Select(topo, node)
		if err != nil {
			return nil, err
		}
		t[nid] = bindings
	}
	return t, nil
}

// Mismatch describes one client whose freshly computed route differs from a
// persisted fgr file.
type Mismatch struct {
	ClientNID int32
	LNET      int
	Persisted int32
	Recomputed int32
}

// Validate re-derives every client's route table from scratch and diffs it
// against a previously persisted one, flagging any (client, LNET) whose
// primary router changed. Grounded on fgr2.py's validation pass, dropped by
// the distillation and reinstated here as a standalone operation.
func Validate(topo *topology.Topology, persisted routetable.Table) ([]Mismatch, error) {
	fresh, err := BuildAll(topo)
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, client := range persisted.Clients() {
		freshBindings, ok := fresh[client]
		if !ok {
			continue
		}
		freshByLNET := make(map[int]int32, len(freshBindings))
		for _, b := range freshBindings {
			freshByLNET[b.LNET] = b.RouterNID
		}
		for _, b := range persisted[client] {
			if want, ok := freshByLNET[b.LNET]; ok && want != b.RouterNID {
				mismatches = append(mismatches, Mismatch{
					ClientNID:  client,
					LNET:       b.LNET,
					Persisted:  b.RouterNID,
					Recomputed: want,
				})
			}
		}
	}
	return mismatches, nil
}
