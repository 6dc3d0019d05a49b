package routetable

import (
	"strings"
	"testing"
)

func TestParseFGRRoundTrip(t *testing.T) {
	input := "1000 o2ib201:1 o2ib202:2\n1001 o2ib201:1\n"

	tbl, err := ParseFGR(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseFGR() failed: %v", err)
	}
	if len(tbl) != 2 {
		t.Fatalf("parsed %d clients, want 2", len(tbl))
	}
	if len(tbl[1000]) != 2 {
		t.Fatalf("client 1000 has %d bindings, want 2", len(tbl[1000]))
	}

	var out strings.Builder
	if err := WriteFGR(&out, tbl); err != nil {
		t.Fatalf("WriteFGR() failed: %v", err)
	}

	reparsed, err := ParseFGR(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("ParseFGR() on round-tripped output failed: %v", err)
	}
	if len(reparsed) != len(tbl) {
		t.Errorf("round trip changed client count: got %d, want %d", len(reparsed), len(tbl))
	}
}

func TestWriteFGRSortsBindingsByLNET(t *testing.T) {
	tbl := Table{
		1000: {{LNET: 210, RouterNID: 2}, {LNET: 201, RouterNID: 1}},
	}

	var out strings.Builder
	if err := WriteFGR(&out, tbl); err != nil {
		t.Fatalf("WriteFGR() failed: %v", err)
	}

	want := "1000 o2ib201:1 o2ib210:2\n"
	if out.String() != want {
		t.Errorf("WriteFGR() = %q, want %q", out.String(), want)
	}
}

func TestParseFGRMalformedPair(t *testing.T) {
	_, err := ParseFGR(strings.NewReader("1000 garbage\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed route pair")
	}
}

func TestParseFGROrderedPreservesFileAppearanceOrder(t *testing.T) {
	input := "1001 o2ib201:1\n1000 o2ib201:1\n1001 o2ib202:2\n"

	tbl, order, err := ParseFGROrdered(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseFGROrdered() failed: %v", err)
	}
	if len(tbl) != 2 {
		t.Fatalf("parsed %d clients, want 2", len(tbl))
	}
	want := []int32{1001, 1000}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestParseFGRMissingFields(t *testing.T) {
	_, err := ParseFGR(strings.NewReader("1000\n"))
	if err == nil {
		t.Fatal("expected an error for a line with only a client nid")
	}
}
