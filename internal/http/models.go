package http

import (
	"net/netip"

	"github.com/Flarenzy/subnet-calc/internal/domain"
)

// NetworkReportRequest is the payload accepted when describing a network.
type NetworkReportRequest struct {
	CIDR string `json:"cidr" example:"192.168.1.10/24" validate:"required"`
}

// NetworkReportResponse is the addressing summary returned to clients and
// used in Swagger. first_usable and last_usable are omitted for /31 and
// /32 networks.
type NetworkReportResponse struct {
	IP          string `json:"ip" example:"192.168.1.10"`
	Prefix      int    `json:"prefix" example:"24"`
	Mask        string `json:"mask" example:"255.255.255.0"`
	Network     string `json:"network" example:"192.168.1.0"`
	Broadcast   string `json:"broadcast" example:"192.168.1.255"`
	FirstUsable string `json:"first_usable,omitempty" example:"192.168.1.1"`
	LastUsable  string `json:"last_usable,omitempty" example:"192.168.1.254"`
	UsableHosts uint32 `json:"usable_hosts" example:"254"`
}

// VLSMRequest is the payload accepted when partitioning a network.
type VLSMRequest struct {
	CIDR  string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	Hosts []int  `json:"hosts" example:"50,20,10" validate:"required"`
}

// SubnetAllocationResponse is one allocated sub-network. index is the
// 1-based position of the demand in the request.
type SubnetAllocationResponse struct {
	Index       int    `json:"index" example:"1"`
	Hosts       int    `json:"hosts" example:"50"`
	CIDR        string `json:"cidr" example:"192.168.1.0/26"`
	Mask        string `json:"mask" example:"255.255.255.192"`
	Network     string `json:"network" example:"192.168.1.0"`
	Broadcast   string `json:"broadcast" example:"192.168.1.63"`
	FirstUsable string `json:"first_usable,omitempty" example:"192.168.1.1"`
	LastUsable  string `json:"last_usable,omitempty" example:"192.168.1.62"`
	UsableHosts uint32 `json:"usable_hosts" example:"62"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid cidr"`
}

func reportToResponse(report domain.NetworkReport) NetworkReportResponse {
	return NetworkReportResponse{
		IP:          report.IP.String(),
		Prefix:      report.Prefix,
		Mask:        report.Mask.String(),
		Network:     report.Network.String(),
		Broadcast:   report.Broadcast.String(),
		FirstUsable: addrString(report.FirstUsable),
		LastUsable:  addrString(report.LastUsable),
		UsableHosts: report.UsableHosts,
	}
}

func allocationToResponse(alloc domain.SubnetAllocation) SubnetAllocationResponse {
	return SubnetAllocationResponse{
		Index:       alloc.Index,
		Hosts:       alloc.Hosts,
		CIDR:        netip.PrefixFrom(alloc.Network, alloc.Prefix).String(),
		Mask:        alloc.Mask.String(),
		Network:     alloc.Network.String(),
		Broadcast:   alloc.Broadcast.String(),
		FirstUsable: addrString(alloc.FirstUsable),
		LastUsable:  addrString(alloc.LastUsable),
		UsableHosts: alloc.UsableHosts,
	}
}

func allocationsToResponse(allocs []domain.SubnetAllocation) []SubnetAllocationResponse {
	out := make([]SubnetAllocationResponse, 0, len(allocs))
	for _, alloc := range allocs {
		out = append(out, allocationToResponse(alloc))
	}
	return out
}

func addrString(addr netip.Addr) string {
	if !addr.IsValid() {
		return ""
	}
	return addr.String()
}
