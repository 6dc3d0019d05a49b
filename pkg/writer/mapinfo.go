// Package writer renders the planner's output file formats: the mapinfo
// dumps, the routing map, and the IOR placement shell. These are the
// external collaborators named in the specification's I/O contracts —
// concretely implemented here so the repository is runnable end to end.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nersc/fgr/internal/lnetost"
	"github.com/nersc/fgr/internal/topology"
)

// WriteLNET2OST writes one line per LNET, "<lnet> <ost1> <ost2> ...\n\n" —
// the blank line between records is preserved verbatim for byte
// compatibility with existing consumers; it is not a formatting bug.
func WriteLNET2OST(w io.Writer, layout *lnetost.Layout) error {
	bw := bufio.NewWriter(w)
	for lnet := lnetost.LNETBase; lnet < lnetost.LNETBase+lnetost.LNETCount; lnet++ {
		if _, err := fmt.Fprintf(bw, "%d", lnet); err != nil {
			return err
		}
		for _, ost := range layout.OSTsForLNET(lnet) {
			if _, err := fmt.Fprintf(bw, " %d", ost); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOST2LNET writes one "<ost> <lnet>" line per OST.
func WriteOST2LNET(w io.Writer, layout *lnetost.Layout) error {
	bw := bufio.NewWriter(w)
	for ost := 0; ost < lnetost.OSTCount; ost++ {
		lnet, ok := layout.LNETForOSTIndex(ost)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", ost, lnet); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteAtlasRouters writes one router per line for the given partition:
// "<partition> <lnet> <module_cname><interface> <x> <y> <z>".
func WriteAtlasRouters(w io.Writer, topo *topology.Topology, partition topology.Partition) error {
	bw := bufio.NewWriter(w)
	for _, r := range topo.Routers {
		if r.Partition != partition {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %d %s %d %d %d\n",
			partition, r.LNET, r.Cname().String(), r.Coords.X, r.Coords.Y, r.Coords.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRtr2Client writes one "<router_nid> <count>" line per router that has
// at least one client assigned, counts taken from the cost engine's inverted
// index.
func WriteRtr2Client(w io.Writer, topo *topology.Topology, routerClients map[int32][]int32) error {
	bw := bufio.NewWriter(w)
	for _, r := range topo.Routers {
		clients, ok := routerClients[r.NID]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", r.NID, len(clients)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MapInfoPaths names the five files WriteMapInfo produces.
type MapInfoPaths struct {
	LNET2OST    string
	OST2LNET    string
	Atlas1Rtr   string
	Atlas2Rtr   string
	Rtr2Client  string
}

// DefaultMapInfoPaths returns the conventional file names rooted at dir.
func DefaultMapInfoPaths(dir string) MapInfoPaths {
	join := func(name string) string {
		if dir == "" {
			return name
		}
		return dir + "/" + name
	}
	return MapInfoPaths{
		LNET2OST:   join("lnet2ost.map"),
		OST2LNET:   join("ost2lnet.map"),
		Atlas1Rtr:  join("atlas1-rtr.map"),
		Atlas2Rtr:  join("atlas2-rtr.map"),
		Rtr2Client: join("rtr2client.map"),
	}
}

// WriteMapInfo emits all five mapinfo files.
func WriteMapInfo(paths MapInfoPaths, topo *topology.Topology, layout *lnetost.Layout, routerClients map[int32][]int32) error {
	writers := []struct {
		path string
		fn   func(io.Writer) error
	}{
		{paths.LNET2OST, func(w io.Writer) error { return WriteLNET2OST(w, layout) }},
		{paths.OST2LNET, func(w io.Writer) error { return WriteOST2LNET(w, layout) }},
		{paths.Atlas1Rtr, func(w io.Writer) error { return WriteAtlasRouters(w, topo, topology.Atlas1) }},
		{paths.Atlas2Rtr, func(w io.Writer) error { return WriteAtlasRouters(w, topo, topology.Atlas2) }},
		{paths.Rtr2Client, func(w io.Writer) error { return WriteRtr2Client(w, topo, routerClients) }},
	}

	for _, wr := range writers {
		f, err := os.Create(wr.path)
		if err != nil {
			return fmt.Errorf("writer: create %s: %w", wr.path, err)
		}
		err = wr.fn(f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("writer: write %s: %w", wr.path, err)
		}
		if closeErr != nil {
			return fmt.Errorf("writer: close %s: %w", wr.path, closeErr)
		}
	}
	return nil
}
