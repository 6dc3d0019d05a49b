// Package routetable models the client→router mapping produced by the router
// selector and consumed by the placement scheduler and cost engine alike.
package routetable

import "sort"

// Binding is one LNET→router assignment for a client.
type Binding struct {
	LNET      int
	RouterNID int32
	GNI       int // 0 when not populated by the producer (e.g. parsed from an fgr file)
}

// Table is the full client→[]Binding mapping. A complete entry has exactly
// 36 bindings, one per LNET in [201,237), with distinct LNETs.
type Table map[int32][]Binding

// Clients returns the table's client NIDs in ascending order.
func (t Table) Clients() []int32 {
	out := make([]int32, 0, len(t))
	for nid := range t {
		out = append(out, nid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Merge combines another table into t, overwriting any duplicate client
// entries. Used by the parallel route generator to join per-row partials.
func (t Table) Merge(other Table) {
	for nid, bindings := range other {
		t[nid] = bindings
	}
}
