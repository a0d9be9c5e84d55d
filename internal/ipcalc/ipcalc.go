// Package ipcalc holds the IPv4 address arithmetic the calculator is built
// on. Everything works on big-endian 32-bit integers; netip.Addr is only
// the boundary representation.
package ipcalc

import (
	"math/bits"
	"net/netip"
)

// ToUint32 returns the address as a big-endian 32-bit integer. The caller
// guarantees addr is an IPv4 address.
func ToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// FromUint32 is the inverse of ToUint32.
func FromUint32(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// MaskForPrefix returns the subnet mask for a prefix length in 0..=32.
// Prefix 0 is its own branch: shifting a 32-bit value by 32 is not defined.
func MaskForPrefix(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - prefix)
}

// NetworkAddress clears the host bits of addr.
func NetworkAddress(addr, mask uint32) uint32 {
	return addr & mask
}

// BroadcastAddress sets the host bits of network.
func BroadcastAddress(network, mask uint32) uint32 {
	return network | ^mask
}

// RequiredPrefix returns the smallest prefix length whose block holds
// hosts usable addresses plus the network and broadcast addresses. A block
// whose size is an exact power of two falls out of the same ceil(log2)
// computation. Counts too large for any IPv4 block yield a negative
// prefix, which callers reject the same way as any prefix below their
// base.
func RequiredPrefix(hosts int) int {
	needed := uint64(hosts) + 2
	return 32 - bits.Len64(needed-1)
}

// UsableHosts returns the number of assignable addresses in a block of the
// given prefix length. /31 and /32 blocks have none: /31 point-to-point
// pairs and /32 single hosts keep no distinct usable range here.
func UsableHosts(prefix int) uint32 {
	if prefix >= 31 {
		return 0
	}
	return uint32(uint64(1)<<(32-prefix) - 2)
}
