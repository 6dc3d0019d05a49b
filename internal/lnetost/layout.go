// Package lnetost computes the bijective mapping between OST indices and the
// LNET that serves them. Pure arithmetic, no I/O, computed once at startup.
package lnetost

const (
	// OSTCount is the total number of OSTs across both partitions.
	OSTCount = 2016
	// OSTsPerPartition is the OST count of a single Lustre partition.
	OSTsPerPartition = OSTCount / 2
	// LNETBase and LNETCount bound the LNET id range [201,237).
	LNETBase  = 201
	LNETCount = 36
	// OSTsPerLNET is the fixed fan-out of one LNET.
	OSTsPerLNET = OSTsPerPartition / (LNETCount / 2)
)

// LNETForOST computes the serving LNET for OST index o, per spec:
//
//	lnet = 201 + 9*floor((o mod 144)/72) + ((o+4)/8) mod 9     for o < 1008
//	lnet = LNETForOST(o-1008) + 18                              for o >= 1008
func LNETForOST(o int) int {
	if o >= OSTsPerPartition {
		return LNETForOST(o-OSTsPerPartition) + 18
	}
	base := 9 * ((o % 144) / 72)
	offset := ((o + 4) / 8) % 9
	return LNETBase + base + offset
}

// Layout is the precomputed, startup-built pair of lookup tables.
type Layout struct {
	lnetToOST [LNETCount][]int
	ostToLNET [OSTCount]int
}

// Build populates LNET->[]OST (ascending OST order, 56 entries each) and
// OST->LNET by iterating every OST index once.
func Build() *Layout {
	l := &Layout{}
	for o := 0; o < OSTCount; o++ {
		lnet := LNETForOST(o)
		idx := lnet - LNETBase
		l.lnetToOST[idx] = append(l.lnetToOST[idx], o)
		l.ostToLNET[o] = lnet
	}
	return l
}

// OSTsForLNET returns the ascending-order OST list served by lnet.
func (l *Layout) OSTsForLNET(lnet int) []int {
	idx := lnet - LNETBase
	if idx < 0 || idx >= LNETCount {
		return nil
	}
	out := make([]int, len(l.lnetToOST[idx]))
	copy(out, l.lnetToOST[idx])
	return out
}

// LNETForOSTIndex returns the LNET serving ost, via the precomputed table.
func (l *Layout) LNETForOSTIndex(ost int) (int, bool) {
	if ost < 0 || ost >= OSTCount {
		return 0, false
	}
	return l.ostToLNET[ost], true
}
