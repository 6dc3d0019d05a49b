package writer

import (
	"strings"
	"testing"

	"github.com/nersc/fgr/pkg/placement"
)

func TestIORShellGeneratorProducesLauncherScript(t *testing.T) {
	gen, err := NewIORShellGenerator()
	if err != nil {
		t.Fatalf("NewIORShellGenerator() failed: %v", err)
	}

	in := IORShellInput{
		RunID:      "run-1",
		Strategy:   "hybrid",
		Partition:  "atlas1",
		NumRanks:   2,
		Path:       "/scratch/atlas1/run-1",
		IORBin:     "/usr/bin/ior",
		StripeSize: "1M",
		Ranks: []placement.RankResult{
			{Client: 9000, Router: 5000, LNET: 201, OST: 3},
			{Client: 9001, Router: 5000, LNET: 201, OST: 1009},
		},
	}

	out, err := gen.Generate(in)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !strings.Contains(out, "#PBS -N ior-run-1") {
		t.Errorf("Generate() output missing PBS job name, got:\n%s", out)
	}
	if !strings.Contains(out, "-i 3 /scratch/atlas1/run-1/file.00000000") {
		t.Errorf("Generate() output missing first stripe line, got:\n%s", out)
	}
	if !strings.Contains(out, "-i 1 /scratch/atlas1/run-1/file.00000001") {
		t.Errorf("Generate() output missing second stripe line, got:\n%s", out)
	}
	if !strings.Contains(out, "aprun -n 2 -L 9000,9001 /usr/bin/ior") {
		t.Errorf("Generate() output missing aprun launch line, got:\n%s", out)
	}
	if !strings.Contains(out, "-b 1M -t 1M") {
		t.Errorf("Generate() output missing stripe size flags, got:\n%s", out)
	}
}

func TestIORShellGeneratorEmptyRanks(t *testing.T) {
	gen, err := NewIORShellGenerator()
	if err != nil {
		t.Fatalf("NewIORShellGenerator() failed: %v", err)
	}

	out, err := gen.Generate(IORShellInput{RunID: "empty", NumRanks: 0, Path: "/tmp"})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !strings.Contains(out, "aprun -n 0 -L ") {
		t.Errorf("Generate() with no ranks should still emit an aprun line, got:\n%s", out)
	}
}
