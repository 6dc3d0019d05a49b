package writer

import (
	"path/filepath"
	"testing"

	"github.com/nersc/fgr/internal/routetable"
)

func TestWriteFGRFileAndReadFGRFileRoundTrip(t *testing.T) {
	table := routetable.Table{
		1000: {
			{LNET: 201, RouterNID: 11000, GNI: 101},
			{LNET: 210, RouterNID: 12000, GNI: 102},
		},
		1001: {
			{LNET: 201, RouterNID: 11000, GNI: 101},
		},
	}

	path := filepath.Join(t.TempDir(), "route.fgr")
	if err := WriteFGRFile(path, table); err != nil {
		t.Fatalf("WriteFGRFile() failed: %v", err)
	}

	got, err := ReadFGRFile(path)
	if err != nil {
		t.Fatalf("ReadFGRFile() failed: %v", err)
	}

	if len(got.Clients()) != 2 {
		t.Fatalf("ReadFGRFile() returned %d clients, want 2", len(got.Clients()))
	}
	bindings := got[1000]
	if len(bindings) != 2 {
		t.Fatalf("client 1000 has %d bindings, want 2", len(bindings))
	}
	if bindings[0].LNET != 201 || bindings[0].RouterNID != 11000 {
		t.Errorf("bindings[0] = %+v, want LNET 201 router 11000", bindings[0])
	}
}

func TestReadFGRFileMissing(t *testing.T) {
	_, err := ReadFGRFile(filepath.Join(t.TempDir(), "missing.fgr"))
	if err == nil {
		t.Fatal("ReadFGRFile() on a missing file should fail")
	}
}

func TestWriteFGRFileBadPath(t *testing.T) {
	err := WriteFGRFile(filepath.Join(t.TempDir(), "nonexistent-dir", "route.fgr"), routetable.Table{})
	if err == nil {
		t.Fatal("WriteFGRFile() into a nonexistent directory should fail")
	}
}
