package http

import "fmt"

func (r NetworkReportRequest) validate() error {
	if r.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	return nil
}

func (r VLSMRequest) validate() error {
	if r.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	if len(r.Hosts) == 0 {
		return fmt.Errorf("hosts is required")
	}
	return nil
}
