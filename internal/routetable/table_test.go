package routetable

import "testing"

func TestClientsAscendingOrder(t *testing.T) {
	tbl := Table{
		300: {{LNET: 201, RouterNID: 1}},
		100: {{LNET: 201, RouterNID: 1}},
		200: {{LNET: 201, RouterNID: 1}},
	}

	got := tbl.Clients()
	want := []int32{100, 200, 300}
	if len(got) != len(want) {
		t.Fatalf("Clients() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Clients()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMergeOverwritesDuplicates(t *testing.T) {
	a := Table{100: {{LNET: 201, RouterNID: 1}}}
	b := Table{100: {{LNET: 201, RouterNID: 2}}, 200: {{LNET: 201, RouterNID: 3}}}

	a.Merge(b)

	if len(a) != 2 {
		t.Fatalf("merged table has %d clients, want 2", len(a))
	}
	if a[100][0].RouterNID != 2 {
		t.Errorf("client 100 router = %d, want 2 (overwritten)", a[100][0].RouterNID)
	}
	if a[200][0].RouterNID != 3 {
		t.Errorf("client 200 router = %d, want 3", a[200][0].RouterNID)
	}
}
