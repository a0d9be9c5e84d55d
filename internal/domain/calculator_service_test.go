package domain

import (
	"context"
	"errors"
	"net/netip"
	"reflect"
	"testing"
)

func TestNetworkReportDerivesAddressingDetails(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.NetworkReport(context.Background(), ReportInput{CIDR: "192.168.1.10/24"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.IP != netip.MustParseAddr("192.168.1.10") {
		t.Fatalf("unexpected ip: %s", report.IP)
	}
	if report.Mask != netip.MustParseAddr("255.255.255.0") {
		t.Fatalf("unexpected mask: %s", report.Mask)
	}
	if report.Network != netip.MustParseAddr("192.168.1.0") {
		t.Fatalf("unexpected network: %s", report.Network)
	}
	if report.Broadcast != netip.MustParseAddr("192.168.1.255") {
		t.Fatalf("unexpected broadcast: %s", report.Broadcast)
	}
	if report.FirstUsable != netip.MustParseAddr("192.168.1.1") || report.LastUsable != netip.MustParseAddr("192.168.1.254") {
		t.Fatalf("unexpected usable range: %s - %s", report.FirstUsable, report.LastUsable)
	}
	if report.UsableHosts != 254 {
		t.Fatalf("unexpected usable hosts: %d", report.UsableHosts)
	}
}

func TestNetworkReportHasNoUsableRangeForPointToPointAndHost(t *testing.T) {
	service := NewCalculatorService()

	for _, cidr := range []string{"10.0.0.0/31", "10.0.0.1/32"} {
		report, err := service.NetworkReport(context.Background(), ReportInput{CIDR: cidr})
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", cidr, err)
		}
		if report.FirstUsable.IsValid() || report.LastUsable.IsValid() {
			t.Fatalf("%s: expected no usable range, got %s - %s", cidr, report.FirstUsable, report.LastUsable)
		}
		if report.UsableHosts != 0 {
			t.Fatalf("%s: expected 0 usable hosts, got %d", cidr, report.UsableHosts)
		}
	}
}

func TestNetworkReportZeroPrefix(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.NetworkReport(context.Background(), ReportInput{CIDR: "10.1.2.3/0"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Mask != netip.MustParseAddr("0.0.0.0") {
		t.Fatalf("unexpected mask for /0: %s", report.Mask)
	}
	if report.Network != netip.MustParseAddr("0.0.0.0") || report.Broadcast != netip.MustParseAddr("255.255.255.255") {
		t.Fatalf("unexpected /0 range: %s - %s", report.Network, report.Broadcast)
	}
}

func TestNetworkReportRejectsInvalidInput(t *testing.T) {
	service := NewCalculatorService()

	for _, cidr := range []string{"not-a-cidr", "192.168.1.0", "300.0.0.1/24", "10.0.0.0/33", "2001:db8::/64"} {
		_, err := service.NetworkReport(context.Background(), ReportInput{CIDR: cidr})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", cidr, err)
		}
	}
}

func TestAllocateSingleDemand(t *testing.T) {
	service := NewCalculatorService()

	allocations, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.0/24",
		Hosts: []int{50},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(allocations) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(allocations))
	}

	alloc := allocations[0]
	if alloc.Prefix != 26 {
		t.Fatalf("expected /26, got /%d", alloc.Prefix)
	}
	if alloc.Network != netip.MustParseAddr("192.168.1.0") || alloc.Broadcast != netip.MustParseAddr("192.168.1.63") {
		t.Fatalf("unexpected range: %s - %s", alloc.Network, alloc.Broadcast)
	}
	if alloc.FirstUsable != netip.MustParseAddr("192.168.1.1") || alloc.LastUsable != netip.MustParseAddr("192.168.1.62") {
		t.Fatalf("unexpected usable range: %s - %s", alloc.FirstUsable, alloc.LastUsable)
	}
	if alloc.UsableHosts != 62 {
		t.Fatalf("unexpected capacity: %d", alloc.UsableHosts)
	}
}

func TestAllocatePacksLargestFirstAndReturnsAddressOrder(t *testing.T) {
	service := NewCalculatorService()

	allocations, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.0/24",
		Hosts: []int{50, 20, 10},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := []struct {
		network string
		prefix  int
	}{
		{"192.168.1.0", 26},
		{"192.168.1.64", 27},
		{"192.168.1.96", 28},
	}
	if len(allocations) != len(expected) {
		t.Fatalf("expected %d allocations, got %d", len(expected), len(allocations))
	}
	for i, want := range expected {
		if allocations[i].Network != netip.MustParseAddr(want.network) || allocations[i].Prefix != want.prefix {
			t.Fatalf("allocation %d: expected %s/%d, got %s/%d",
				i, want.network, want.prefix, allocations[i].Network, allocations[i].Prefix)
		}
	}
}

func TestAllocateKeepsOriginalDemandIndexes(t *testing.T) {
	service := NewCalculatorService()

	// Smallest demand first: packing reorders, indexes must not.
	allocations, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "10.0.0.0/24",
		Hosts: []int{10, 50},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The 50-host demand (index 2) packs first and therefore sorts first
	// by address.
	if allocations[0].Index != 2 || allocations[0].Hosts != 50 {
		t.Fatalf("expected demand 2 first, got index %d (%d hosts)", allocations[0].Index, allocations[0].Hosts)
	}
	if allocations[1].Index != 1 || allocations[1].Hosts != 10 {
		t.Fatalf("expected demand 1 second, got index %d (%d hosts)", allocations[1].Index, allocations[1].Hosts)
	}
}

func TestAllocateFailsWhenDemandLargerThanBase(t *testing.T) {
	service := NewCalculatorService()

	_, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "10.0.0.0/30",
		Hosts: []int{10},
	})

	var tooSmall *PrefixTooSmallError
	if !errors.As(err, &tooSmall) {
		t.Fatalf("expected PrefixTooSmallError, got %v", err)
	}
	if tooSmall.Index != 1 || tooSmall.Prefix != 28 || tooSmall.BasePrefix != 30 {
		t.Fatalf("unexpected error detail: %+v", tooSmall)
	}
}

func TestAllocateFailsWhenSpaceRunsOut(t *testing.T) {
	service := NewCalculatorService()

	_, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.0/24",
		Hosts: []int{100, 100, 100},
	})

	var noFit *DoesNotFitError
	if !errors.As(err, &noFit) {
		t.Fatalf("expected DoesNotFitError, got %v", err)
	}
	// Ties keep input order, so the third /25 demand is the one rejected.
	if noFit.Index != 3 {
		t.Fatalf("expected demand 3 to fail, got %d", noFit.Index)
	}
}

func TestAllocateReturnsNoPartialResultOnFailure(t *testing.T) {
	service := NewCalculatorService()

	allocations, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.0/24",
		Hosts: []int{100, 100, 100},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if allocations != nil {
		t.Fatalf("expected no partial result, got %d allocations", len(allocations))
	}
}

func TestAllocateRejectsInvalidDemands(t *testing.T) {
	service := NewCalculatorService()

	cases := []AllocateInput{
		{CIDR: "192.168.1.0/24", Hosts: nil},
		{CIDR: "192.168.1.0/24", Hosts: []int{}},
		{CIDR: "192.168.1.0/24", Hosts: []int{50, 0}},
		{CIDR: "192.168.1.0/24", Hosts: []int{-1}},
		{CIDR: "bogus", Hosts: []int{50}},
	}
	for _, input := range cases {
		_, err := service.AllocateSubnets(context.Background(), input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestAllocateRebasesHostAddressToNetwork(t *testing.T) {
	service := NewCalculatorService()

	// A host address mixed with the mask still allocates from the network
	// address of the block.
	allocations, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.77/24",
		Hosts: []int{50},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if allocations[0].Network != netip.MustParseAddr("192.168.1.0") {
		t.Fatalf("expected allocation from 192.168.1.0, got %s", allocations[0].Network)
	}
}

func TestAllocateFillsWholeBaseExactly(t *testing.T) {
	service := NewCalculatorService()

	// Two /25s exhaust the /24; a trailing /30 demand must fail, not wrap.
	_, err := service.AllocateSubnets(context.Background(), AllocateInput{
		CIDR:  "192.168.1.0/24",
		Hosts: []int{100, 100, 2},
	})

	var noFit *DoesNotFitError
	if !errors.As(err, &noFit) {
		t.Fatalf("expected DoesNotFitError, got %v", err)
	}
	if noFit.Index != 3 {
		t.Fatalf("expected demand 3 to fail, got %d", noFit.Index)
	}
}

func TestAllocateInvariantsHold(t *testing.T) {
	service := NewCalculatorService()

	input := AllocateInput{
		CIDR:  "10.20.0.0/16",
		Hosts: []int{500, 2, 120, 6, 1000, 30, 30, 1},
	}
	allocations, err := service.AllocateSubnets(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(allocations) != len(input.Hosts) {
		t.Fatalf("expected %d allocations, got %d", len(input.Hosts), len(allocations))
	}

	base := netip.MustParsePrefix(input.CIDR)
	for i, alloc := range allocations {
		if !base.Contains(alloc.Network) || !base.Contains(alloc.Broadcast) {
			t.Fatalf("allocation %d (%s - %s) escapes base %s", i, alloc.Network, alloc.Broadcast, base)
		}
		if alloc.Prefix < base.Bits() {
			t.Fatalf("allocation %d: prefix /%d larger than base /%d", i, alloc.Prefix, base.Bits())
		}
		if i > 0 {
			prev := allocations[i-1]
			if !prev.Network.Less(alloc.Network) {
				t.Fatalf("allocations not in ascending address order: %s before %s", prev.Network, alloc.Network)
			}
			if !prev.Broadcast.Less(alloc.Network) {
				t.Fatalf("allocations %d and %d overlap: %s - %s then %s", i-1, i, prev.Network, prev.Broadcast, alloc.Network)
			}
		}
	}
}

func TestAllocateIsIdempotent(t *testing.T) {
	service := NewCalculatorService()

	input := AllocateInput{CIDR: "172.16.0.0/20", Hosts: []int{200, 50, 50, 10}}
	first, err := service.AllocateSubnets(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := service.AllocateSubnets(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different allocations:\n%+v\n%+v", first, second)
	}
}
