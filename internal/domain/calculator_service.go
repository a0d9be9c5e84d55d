package domain

import (
	"context"
	"fmt"
	"net/netip"
	"sort"

	"go4.org/netipx"

	"github.com/Flarenzy/subnet-calc/internal/ipcalc"
)

type calculatorService struct{}

// NewCalculatorService returns the stateless subnet calculator. It holds
// no state between calls and is safe for concurrent use.
func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (s *calculatorService) NetworkReport(_ context.Context, input ReportInput) (NetworkReport, error) {
	base, err := parseIPv4Prefix(input.CIDR)
	if err != nil {
		return NetworkReport{}, err
	}

	mask := ipcalc.MaskForPrefix(base.Prefix)
	network := ipcalc.NetworkAddress(ipcalc.ToUint32(base.Addr), mask)
	prefix := netip.PrefixFrom(ipcalc.FromUint32(network), base.Prefix)
	broadcast := netipx.RangeOfPrefix(prefix).To()

	report := NetworkReport{
		IP:          base.Addr,
		Prefix:      base.Prefix,
		Mask:        ipcalc.FromUint32(mask),
		Network:     prefix.Addr(),
		Broadcast:   broadcast,
		UsableHosts: ipcalc.UsableHosts(base.Prefix),
	}
	if base.Prefix < 31 {
		report.FirstUsable = ipcalc.FromUint32(network + 1)
		report.LastUsable = ipcalc.FromUint32(ipcalc.ToUint32(broadcast) - 1)
	}
	return report, nil
}

func (s *calculatorService) AllocateSubnets(_ context.Context, input AllocateInput) ([]SubnetAllocation, error) {
	base, err := parseIPv4Prefix(input.CIDR)
	if err != nil {
		return nil, err
	}
	if len(input.Hosts) == 0 {
		return nil, fmt.Errorf("%w: at least one host count is required", ErrInvalidInput)
	}

	demands := make([]HostDemand, 0, len(input.Hosts))
	for i, hosts := range input.Hosts {
		if hosts <= 0 {
			return nil, fmt.Errorf("%w: host count at position %d must be positive", ErrInvalidInput, i+1)
		}
		demands = append(demands, HostDemand{Index: i + 1, Hosts: hosts})
	}

	return allocate(base, demands)
}

// allocate packs demands largest-first from the base network address and
// returns the result in address order. Largest-first keeps mask-alignment
// gaps small; it is a heuristic, not optimal bin-packing, and the first
// demand that cannot be placed aborts the whole run with no partial
// result.
func allocate(base Network, demands []HostDemand) ([]SubnetAllocation, error) {
	baseMask := ipcalc.MaskForPrefix(base.Prefix)
	baseNetwork := ipcalc.NetworkAddress(ipcalc.ToUint32(base.Addr), baseMask)
	baseBroadcast := ipcalc.BroadcastAddress(baseNetwork, baseMask)

	// Stable sort: equal-sized demands keep their input order, so the
	// packing is deterministic.
	sorted := make([]HostDemand, len(demands))
	copy(sorted, demands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Hosts > sorted[j].Hosts
	})

	out := make([]SubnetAllocation, 0, len(sorted))

	// 64-bit cursor so advancing past 255.255.255.255 does not wrap.
	cursor := uint64(baseNetwork)
	for _, demand := range sorted {
		prefix := ipcalc.RequiredPrefix(demand.Hosts)
		if prefix < base.Prefix {
			return nil, &PrefixTooSmallError{
				Index:      demand.Index,
				Hosts:      demand.Hosts,
				Prefix:     prefix,
				BasePrefix: base.Prefix,
			}
		}

		if cursor > uint64(baseBroadcast) {
			return nil, &DoesNotFitError{Index: demand.Index, Hosts: demand.Hosts}
		}

		mask := ipcalc.MaskForPrefix(prefix)
		// The cursor is realigned to this block's mask rather than used
		// raw; alignment to a power-of-two boundary may skip addresses.
		network := ipcalc.NetworkAddress(uint32(cursor), mask)
		broadcast := ipcalc.BroadcastAddress(network, mask)
		if broadcast > baseBroadcast {
			return nil, &DoesNotFitError{Index: demand.Index, Hosts: demand.Hosts}
		}

		alloc := SubnetAllocation{
			Index:       demand.Index,
			Hosts:       demand.Hosts,
			Prefix:      prefix,
			Network:     ipcalc.FromUint32(network),
			Mask:        ipcalc.FromUint32(mask),
			Broadcast:   ipcalc.FromUint32(broadcast),
			UsableHosts: ipcalc.UsableHosts(prefix),
		}
		if prefix < 31 {
			alloc.FirstUsable = ipcalc.FromUint32(network + 1)
			alloc.LastUsable = ipcalc.FromUint32(broadcast - 1)
		}
		out = append(out, alloc)

		cursor = uint64(broadcast) + 1
	}

	// Presentation order is by address, independent of packing order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Network.Less(out[j].Network)
	})
	return out, nil
}

func parseIPv4Prefix(cidr string) (Network, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return Network{}, fmt.Errorf("%w: invalid cidr", ErrInvalidInput)
	}
	if !prefix.Addr().Is4() {
		return Network{}, fmt.Errorf("%w: only IPv4 networks are supported", ErrInvalidInput)
	}
	return Network{Addr: prefix.Addr(), Prefix: prefix.Bits()}, nil
}
