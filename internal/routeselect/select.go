// Package routeselect implements "node2route": for a compute node, picking
// the primary router module for each of the 9 router groups and deriving the
// 36 LNET bindings that single choice implies.
package routeselect

import (
	"fmt"
	"sort"

	"github.com/nersc/fgr/internal/cost"
	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/internal/topology"
)

// ErrNoRouterMatch is returned when no subgroup of a router group satisfies
// the Y-rule for a given compute node — a topology-constants inconsistency,
// never expected in a well-formed installation.
type ErrNoRouterMatch struct {
	Cname string
	Group int
}

func (e *ErrNoRouterMatch) Error() string {
	return fmt.Sprintf("node2route: no router for node %s in group %s", e.Cname, topology.GroupLabel(e.Group))
}

// Select computes the 36 LNET bindings for a single compute node.
func Select(topo *topology.Topology, node *topology.Node) ([]routetable.Binding, error) {
	bindings := make([]routetable.Binding, 0, topology.GroupCount*4)

	for g := 0; g < topology.GroupCount; g++ {
		k, err := selectSubgroup(topo, node, g)
		if err != nil {
			return nil, err
		}

		sg := topology.Subgroup(g, k)
		rindex, primary, err := rankSubgroup(topo, node, sg)
		if err != nil {
			return nil, err
		}

		gni := 100 + (3*k+1) + rindex

		for _, iface := range []topology.Interface{topology.N0, topology.N2, topology.N1, topology.N3} {
			routerNID, ok := topo.LookupCname(primary + iface.String())
			if !ok {
				return nil, fmt.Errorf("node2route: router module %s interface %s not present in topology map", primary, iface)
			}
			bindings = append(bindings, routetable.Binding{
				LNET:      topology.LNETFor(g, iface),
				RouterNID: routerNID,
				GNI:       gni,
			})
		}
	}

	return bindings, nil
}

// selectSubgroup implements step 2: the first subgroup whose n0 module's Y
// coordinate satisfies -1 <= delta_y <= 2 relative to the compute node.
func selectSubgroup(topo *topology.Topology, node *topology.Node, g int) (int, error) {
	for k := 0; k < topology.SubgroupsPerGroup; k++ {
		sg := topology.Subgroup(g, k)
		coords, err := topo.LookupModuleCoords(sg[0], topology.N0)
		if err != nil {
			return 0, fmt.Errorf("node2route: %w", err)
		}
		deltaY := mod(node.Coords.Y-coords.Y+24, topology.ExtentY) - 8
		if deltaY >= -1 && deltaY <= 2 {
			return k, nil
		}
	}
	return 0, &ErrNoRouterMatch{Cname: node.Cname.String(), Group: g}
}

// rankSubgroup implements step 3: sort the subgroup's 3 modules by torus-X
// distance to the compute node (stable, ties keep input order) and return
// the winner's original position plus its cname.
func rankSubgroup(topo *topology.Topology, node *topology.Node, sg [topology.SubgroupSize]string) (int, string, error) {
	type ranked struct {
		index int
		dist  int
		name  string
	}
	rs := make([]ranked, topology.SubgroupSize)
	for i, m := range sg {
		coords, err := topo.LookupModuleCoords(m, topology.N0)
		if err != nil {
			return 0, "", fmt.Errorf("node2route: %w", err)
		}
		rs[i] = ranked{index: i, dist: cost.Dist(node.Coords.X, coords.X, topology.ExtentX), name: m}
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].dist < rs[j].dist })
	return rs[0].index, rs[0].name, nil
}

func mod(v, d int) int {
	v %= d
	if v < 0 {
		v += d
	}
	return v
}
