// Package cost computes torus routing cost between compute clients and
// routers, restricted to the (client, router) pairs present in the fgr
// adjacency input.
package cost

// Dist returns the wrap-around torus distance between a and b along an axis
// of extent d: the shorter of the two directions around the ring.
func Dist(a, b, d int) int {
	fwd := mod(a-b, d)
	bwd := mod(b-a, d)
	if fwd < bwd {
		return fwd
	}
	return bwd
}

func mod(v, d int) int {
	v %= d
	if v < 0 {
		v += d
	}
	return v
}

// Coords3 is the minimal 3-tuple Weighted needs; kept independent of the
// topology package so this file has no import cycle risk and can be unit
// tested in isolation.
type Coords3 struct {
	X, Y, Z int
}

// Weighted computes the biased, dimensionally-weighted torus cost between a
// client and a router: 4*dx + 8*dy + dz + 100. The +100 bias is preserved
// verbatim for byte-compatibility with downstream consumers of the cost
// format; it is not a tunable.
func Weighted(client, router Coords3) int {
	dx := Dist(client.X, router.X, 25)
	dy := Dist(client.Y, router.Y, 16)
	dz := Dist(client.Z, router.Z, 24)
	return 4*dx + 8*dy + dz + 100
}
