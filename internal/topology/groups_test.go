package topology

import "testing"

func TestDocumentedModulePlacement(t *testing.T) {
	// Scenario 4 in the testable-properties list: c7-2c2s0n0 is group A
	// (index 0), module 0, interface n0.
	if got := RouterGroups[0][0]; got != "c7-2c2s0" {
		t.Errorf("RouterGroups[0][0] = %q, want %q", got, "c7-2c2s0")
	}
}

func TestRouterGroupsHaveNoCollisions(t *testing.T) {
	seen := make(map[string]bool, GroupCount*ModulesPerGroup)
	for g := 0; g < GroupCount; g++ {
		for _, m := range RouterGroups[g] {
			if seen[m] {
				t.Fatalf("module cname %q appears in more than one group/module slot", m)
			}
			seen[m] = true
		}
	}
}

func TestSubgroupSlicesThreeModules(t *testing.T) {
	sg := Subgroup(0, 0)
	if sg[0] != RouterGroups[0][0] || sg[1] != RouterGroups[0][1] || sg[2] != RouterGroups[0][2] {
		t.Errorf("Subgroup(0,0) = %v, want first 3 entries of group 0", sg)
	}
}

func TestLNETForCoversAllInterfaces(t *testing.T) {
	tests := []struct {
		g    int
		i    Interface
		want int
	}{
		{0, N0, 201},
		{0, N2, 210},
		{0, N1, 219},
		{0, N3, 228},
		{8, N0, 209},
		{8, N3, 236},
	}
	for _, tt := range tests {
		if got := LNETFor(tt.g, tt.i); got != tt.want {
			t.Errorf("LNETFor(%d, %v) = %d, want %d", tt.g, tt.i, got, tt.want)
		}
	}
}

func TestGroupLabel(t *testing.T) {
	if got := GroupLabel(0); got != "A" {
		t.Errorf("GroupLabel(0) = %q, want %q", got, "A")
	}
	if got := GroupLabel(8); got != "I" {
		t.Errorf("GroupLabel(8) = %q, want %q", got, "I")
	}
}
