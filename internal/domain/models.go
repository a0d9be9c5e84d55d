package domain

import "net/netip"

// Network is a base network for calculation. Addr may be any host address
// inside the block; the network address is re-derived from the mask before
// use.
type Network struct {
	Addr   netip.Addr
	Prefix int
}

// HostDemand is one requested sub-network size. Index is the 1-based
// position in the caller's demand list and survives reordering, so errors
// and results can always point back at the input.
type HostDemand struct {
	Index int
	Hosts int
}

// SubnetAllocation describes one allocated sub-network. FirstUsable and
// LastUsable are the zero Addr for /31 and /32 blocks, which have no
// usable range.
type SubnetAllocation struct {
	Index       int
	Hosts       int
	Prefix      int
	Network     netip.Addr
	Mask        netip.Addr
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	UsableHosts uint32
}

// NetworkReport is the addressing summary for a single network.
type NetworkReport struct {
	IP          netip.Addr
	Prefix      int
	Mask        netip.Addr
	Network     netip.Addr
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	UsableHosts uint32
}
