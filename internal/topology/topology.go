package topology

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Topology is the loaded physical map: every node's identity and coordinates,
// plus the classified router fabric. After Load returns, only the candidate
// client set changes (ApplyFailedNodes, ReplaceComputeSet); owned by main and
// passed by reference into the components that read it.
type Topology struct {
	byNID   map[int32]*Node
	byCname map[string]int32

	computeNIDs map[int32]struct{}

	Routers      []Router
	routerByNID  map[int32]int      // router-node NID -> index into Routers
	moduleGroup  map[string]int     // module cname string -> group index
	fingerprint  [blake2b.Size256]byte
	fingerprinted bool
}

// moduleIndex maps every known module cname to its group, built once.
func moduleIndex() map[string]int {
	idx := make(map[string]int, GroupCount*ModulesPerGroup)
	for g := 0; g < GroupCount; g++ {
		for _, m := range RouterGroups[g] {
			idx[m] = g
		}
	}
	return idx
}

// Load parses a whitespace-delimited topology map file: one record per line,
// "nid cname nodetype x y z". Missing file is fatal; a malformed line is
// fatal with its line number.
func Load(mapPath string) (*Topology, error) {
	f, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("load topology map %s: %w", mapPath, err)
	}
	defer f.Close()

	t := &Topology{
		byNID:       make(map[int32]*Node),
		byCname:     make(map[string]int32),
		computeNIDs: make(map[int32]struct{}),
		moduleGroup: moduleIndex(),
	}

	h, _ := blake2b.New256(nil)
	tee := io.TeeReader(f, h)

	scanner := bufio.NewScanner(tee)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		node, err := parseNodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("load topology map %s:%d: %w", mapPath, lineNo, err)
		}
		t.byNID[node.NID] = node
		t.byCname[node.Cname.String()] = node.NID
		if node.NodeType == Compute {
			t.computeNIDs[node.NID] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load topology map %s: %w", mapPath, err)
	}

	copy(t.fingerprint[:], h.Sum(nil))
	t.fingerprinted = true

	if err := t.classifyRouters(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseNodeLine(line string) (*Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return nil, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}
	nidVal, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid nid %q: %w", fields[0], err)
	}
	cn, err := ParseCname(fields[1])
	if err != nil {
		return nil, err
	}
	var nodeType NodeType
	switch fields[2] {
	case "compute":
		nodeType = Compute
	default:
		nodeType = Service
	}
	x, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid x %q: %w", fields[3], err)
	}
	y, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("invalid y %q: %w", fields[4], err)
	}
	z, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("invalid z %q: %w", fields[5], err)
	}
	return &Node{
		NID:      int32(nidVal),
		Cname:    cn,
		NodeType: nodeType,
		Coords:   Coords{X: x, Y: y, Z: z},
	}, nil
}

// classifyRouters walks every loaded node and, for any whose cname's module
// part matches one of the 108 known router modules, instantiates a Router
// for the interface that node's cname names.
func (t *Topology) classifyRouters() error {
	t.routerByNID = make(map[int32]int)

	nids := make([]int32, 0, len(t.byNID))
	for nid := range t.byNID {
		nids = append(nids, nid)
	}
	sort.Slice(nids, func(i, j int) bool { return nids[i] < nids[j] })

	for _, nid := range nids {
		node := t.byNID[nid]
		if node.Cname.N == nil {
			continue
		}
		moduleStr := node.Cname.Module().String()
		g, ok := t.moduleGroup[moduleStr]
		if !ok {
			continue
		}
		iface := Interface(*node.Cname.N)
		if iface > N3 {
			return fmt.Errorf("node %s: unknown router interface n%d", node.Cname.String(), *node.Cname.N)
		}
		r := Router{
			NID:       node.NID,
			Module:    node.Cname.Module(),
			Interface: iface,
			Coords:    node.Coords,
			Partition: PartitionOf(iface),
			Group:     g,
			LNET:      LNETFor(g, iface),
		}
		t.routerByNID[nid] = len(t.Routers)
		t.Routers = append(t.Routers, r)
	}
	return nil
}

// Selector names which Lustre partition(s) a caller wants routers for.
type Selector string

const (
	SelectAtlas1 Selector = "atlas1"
	SelectAtlas2 Selector = "atlas2"
	SelectAtlas  Selector = "atlas"
)

// RoutersFor returns the eligible router set for a partition selector, in
// ascending router-NID order: ATLAS1_RTRS, ATLAS2_RTRS, or their
// concatenation for "atlas".
func (t *Topology) RoutersFor(sel Selector) ([]Router, error) {
	var out []Router
	switch sel {
	case SelectAtlas1:
		out = t.routersInPartition(Atlas1)
	case SelectAtlas2:
		out = t.routersInPartition(Atlas2)
	case SelectAtlas:
		out = append(t.routersInPartition(Atlas1), t.routersInPartition(Atlas2)...)
	default:
		return nil, fmt.Errorf("unknown partition selector %q", sel)
	}
	return out, nil
}

func (t *Topology) routersInPartition(p Partition) []Router {
	out := make([]Router, 0, len(t.Routers))
	for _, r := range t.Routers {
		if r.Partition == p {
			out = append(out, r)
		}
	}
	return out
}

// LookupNID returns the node for a NID.
func (t *Topology) LookupNID(nid int32) (*Node, bool) {
	n, ok := t.byNID[nid]
	return n, ok
}

// LookupCname returns the NID registered under a cname string.
func (t *Topology) LookupCname(cname string) (int32, bool) {
	nid, ok := t.byCname[cname]
	return nid, ok
}

// LookupModuleCoords returns the torus coordinates of a router module via the
// given interface; the router selector passes n0 (§4.4 steps 2 and 3).
func (t *Topology) LookupModuleCoords(module string, iface Interface) (Coords, error) {
	nid, ok := t.byCname[module+iface.String()]
	if !ok {
		return Coords{}, fmt.Errorf("router module %s%s not present in topology map", module, iface)
	}
	node := t.byNID[nid]
	return node.Coords, nil
}

// ComputeNIDs returns the candidate client set, in ascending NID order.
func (t *Topology) ComputeNIDs() []int32 {
	out := make([]int32, 0, len(t.computeNIDs))
	for nid := range t.computeNIDs {
		out = append(out, nid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsCompute reports whether nid is a candidate client.
func (t *Topology) IsCompute(nid int32) bool {
	_, ok := t.computeNIDs[nid]
	return ok
}

// ApplyFailedNodes removes the given NIDs from the candidate client set.
func (t *Topology) ApplyFailedNodes(failed []int32) {
	for _, nid := range failed {
		delete(t.computeNIDs, nid)
	}
}

// ReplaceComputeSet fully replaces the candidate client set, used when a
// --nodefile is supplied.
func (t *Topology) ReplaceComputeSet(nids []int32) {
	t.computeNIDs = make(map[int32]struct{}, len(nids))
	for _, nid := range nids {
		t.computeNIDs[nid] = struct{}{}
	}
}

// RouterByNID returns the Router reached through the given underlying node NID.
func (t *Topology) RouterByNID(nid int32) (Router, bool) {
	idx, ok := t.routerByNID[nid]
	if !ok {
		return Router{}, false
	}
	return t.Routers[idx], true
}

// Fingerprint returns a short hex digest of the raw map file bytes. The
// placement result records it, so two placement runs against different
// topology snapshots are distinguishable; other output files do not carry it.
func (t *Topology) Fingerprint() string {
	if !t.fingerprinted {
		return ""
	}
	return fmt.Sprintf("%x", t.fingerprint[:8])
}
