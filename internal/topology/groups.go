package topology

import "fmt"

// GroupCount is the number of router groups (A..I).
const GroupCount = 9

// ModulesPerGroup is the number of router modules in a single group.
const ModulesPerGroup = 12

// SubgroupSize is the number of modules in a subgroup.
const SubgroupSize = 3

// SubgroupsPerGroup is the number of subgroups a group splits into.
const SubgroupsPerGroup = ModulesPerGroup / SubgroupSize

// GroupLabel returns the letter label ("A".."I") for a group index.
func GroupLabel(g int) string {
	return string(rune('A' + g))
}

// RouterGroups is the fixed, built-in table of 9 router groups (A..I), each a
// list of 12 module cnames in subgroup order (modules 0-2 are subgroup 0,
// 3-5 are subgroup 1, and so on). This is the installation's actual router
// fabric layout, transcribed verbatim; cname validity against the loaded
// topology map is enforced at classification time, not here.
var RouterGroups = [GroupCount][ModulesPerGroup]string{
	{ // A
		"c7-2c2s0", "c23-2c1s7", "c10-2c0s0", "c3-6c0s2", "c19-6c2s2", "c14-6c1s5",
		"c7-5c2s5", "c23-5c1s2", "c10-5c0s5", "c3-1c1s4", "c19-1c0s3", "c14-1c2s3",
	},
	{ // B
		"c5-0c0s5", "c19-0c1s2", "c12-0c2s5", "c1-4c2s7", "c15-4c0s7", "c16-4c1s0",
		"c5-7c1s5", "c19-7c2s2", "c12-7c0s2", "c1-3c2s0", "c15-3c0s0", "c16-3c1s7",
	},
	{ // C
		"c5-0c2s1", "c19-0c0s1", "c12-0c1s6", "c1-4c1s4", "c15-4c2s3", "c16-4c0s3",
		"c5-7c2s6", "c19-7c0s6", "c12-7c1s1", "c1-3c0s4", "c15-3c1s3", "c16-3c2s4",
	},
	{ // D
		"c13-0c1s5", "c22-0c2s2", "c4-0c0s2", "c9-4c0s4", "c23-4c1s3", "c8-4c2s4",
		"c13-7c1s0", "c22-7c2s7", "c4-7c0s7", "c9-3c2s5", "c23-3c0s5", "c8-3c1s2",
	},
	{ // E
		"c13-0c2s6", "c22-0c0s6", "c4-0c1s1", "c9-4c2s0", "c23-4c0s0", "c8-4c1s7",
		"c13-7c0s3", "c22-7c1s4", "c4-7c2s3", "c9-3c1s6", "c23-3c2s1", "c8-3c0s1",
	},
	{ // F
		"c3-2c1s0", "c21-2c0s7", "c14-2c2s7", "c0-6c1s6", "c17-6c0s1", "c18-6c2s1",
		"c3-5c0s4", "c21-5c2s4", "c14-5c1s3", "c0-1c2s2", "c17-1c1s5", "c18-1c0s2",
	},
	{ // G
		"c3-2c2s3", "c21-2c1s4", "c14-2c0s3", "c0-6c0s5", "c17-6c2s5", "c18-6c1s2",
		"c3-5c1s7", "c21-5c0s0", "c14-5c2s0", "c0-1c1s1", "c17-1c0s6", "c18-1c2s6",
	},
	{ // H
		"c11-2c0s6", "c20-2c2s6", "c6-2c1s1", "c7-6c0s0", "c24-6c2s0", "c10-6c1s7",
		"c11-5c2s3", "c20-5c1s4", "c6-5c0s3", "c7-1c1s6", "c24-1c0s1", "c10-1c2s1",
	},
	{ // I
		"c11-2c1s5", "c20-2c0s2", "c6-2c2s2", "c7-6c2s4", "c24-6c1s3", "c10-6c0s4",
		"c11-5c1s0", "c20-5c0s7", "c6-5c2s7", "c7-1c0s5", "c24-1c2s5", "c10-1c1s2",
	},
}

// Subgroup returns the 3 modules of group g's subgroup k (k in [0,4)).
func Subgroup(g, k int) [SubgroupSize]string {
	var sg [SubgroupSize]string
	copy(sg[:], RouterGroups[g][k*SubgroupSize:(k+1)*SubgroupSize])
	return sg
}

// BaseLNET returns the base LNET for group g (n0's LNET); n2/n1/n3 are
// BaseLNET+9/+18/+27 respectively.
func BaseLNET(g int) int {
	return 201 + g
}

// lnetStep returns the per-interface offset added to a group's base LNET.
func lnetStep(i Interface) int {
	switch i {
	case N0:
		return 0
	case N2:
		return 9
	case N1:
		return 18
	case N3:
		return 27
	default:
		panic(fmt.Sprintf("topology: unknown interface %d", i))
	}
}

// LNETFor returns the LNET id for a router in group g on interface i.
func LNETFor(g int, i Interface) int {
	return BaseLNET(g) + lnetStep(i)
}
