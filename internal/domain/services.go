package domain

import "context"

type CalculatorService interface {
	NetworkReport(ctx context.Context, input ReportInput) (NetworkReport, error)
	AllocateSubnets(ctx context.Context, input AllocateInput) ([]SubnetAllocation, error)
}
