package topology

// Router is a single (module_cname, interface) pair — one physical port on a
// router module, reached through the underlying node's NID.
type Router struct {
	NID       int32
	Module    Cname
	Interface Interface
	Coords    Coords
	Partition Partition
	Group     int // group index [0,9)
	LNET      int // [201,237)
}

// Cname returns the fully qualified interface cname, e.g. "c7-2c2s0n0".
func (r Router) Cname() Cname {
	return r.Module.WithInterface(uint8(r.Interface))
}
