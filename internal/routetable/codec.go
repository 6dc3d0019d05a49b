package routetable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseFGR reads the routing-map ("fgr") text format: one line per client,
// "<nid> o2ib<lnet>:<router_nid> o2ib<lnet>:<router_nid> …".
func ParseFGR(r io.Reader) (Table, error) {
	t, _, err := ParseFGROrdered(r)
	return t, err
}

// ParseFGROrdered parses the same format as ParseFGR but additionally
// returns the client NIDs in file-appearance order. The cost engine's
// first-appearance tie-break (§4.2) depends on this order, which a plain
// map iteration over Table would not preserve.
func ParseFGROrdered(r io.Reader) (Table, []int32, error) {
	t := make(Table)
	var order []int32
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("fgr line %d: expected at least 2 fields, got %d", lineNo, len(fields))
		}
		clientVal, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("fgr line %d: invalid client nid %q: %w", lineNo, fields[0], err)
		}
		client := int32(clientVal)
		bindings := make([]Binding, 0, len(fields)-1)
		for _, pair := range fields[1:] {
			b, err := parsePair(pair)
			if err != nil {
				return nil, nil, fmt.Errorf("fgr line %d: %w", lineNo, err)
			}
			bindings = append(bindings, b)
		}
		if _, seen := t[client]; !seen {
			order = append(order, client)
		}
		t[client] = bindings
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("fgr: %w", err)
	}
	return t, order, nil
}

func parsePair(pair string) (Binding, error) {
	const prefix = "o2ib"
	if !strings.HasPrefix(pair, prefix) {
		return Binding{}, fmt.Errorf("malformed route pair %q: missing %q prefix", pair, prefix)
	}
	rest := pair[len(prefix):]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return Binding{}, fmt.Errorf("malformed route pair %q: missing ':'", pair)
	}
	lnet, err := strconv.Atoi(rest[:colon])
	if err != nil {
		return Binding{}, fmt.Errorf("malformed route pair %q: invalid lnet: %w", pair, err)
	}
	routerVal, err := strconv.ParseInt(rest[colon+1:], 10, 32)
	if err != nil {
		return Binding{}, fmt.Errorf("malformed route pair %q: invalid router nid: %w", pair, err)
	}
	return Binding{LNET: lnet, RouterNID: int32(routerVal)}, nil
}

// WriteFGR serializes t in the same format ParseFGR reads, one line per
// client in ascending NID order, bindings in ascending LNET order.
func WriteFGR(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for _, client := range t.Clients() {
		bindings := append([]Binding(nil), t[client]...)
		sortBindingsByLNET(bindings)
		if _, err := fmt.Fprintf(bw, "%d", client); err != nil {
			return err
		}
		for _, b := range bindings {
			if _, err := fmt.Fprintf(bw, " o2ib%d:%d", b.LNET, b.RouterNID); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func sortBindingsByLNET(b []Binding) {
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && b[j-1].LNET > b[j].LNET; j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
}
