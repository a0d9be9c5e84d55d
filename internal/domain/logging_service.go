package domain

import (
	"context"
	"log/slog"
)

type loggingCalculatorService struct {
	logger *slog.Logger
	next   CalculatorService
}

func NewLoggingCalculatorService(logger *slog.Logger, next CalculatorService) CalculatorService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingCalculatorService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingCalculatorService) NetworkReport(ctx context.Context, input ReportInput) (NetworkReport, error) {
	report, err := s.next.NetworkReport(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "network report failed", "cidr", input.CIDR, "err", err.Error())
		return NetworkReport{}, err
	}

	s.logger.DebugContext(ctx, "network report computed",
		"cidr", input.CIDR,
		"network", report.Network.String(),
		"broadcast", report.Broadcast.String())
	return report, nil
}

func (s *loggingCalculatorService) AllocateSubnets(ctx context.Context, input AllocateInput) ([]SubnetAllocation, error) {
	allocations, err := s.next.AllocateSubnets(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "vlsm allocation failed", "cidr", input.CIDR, "demands", len(input.Hosts), "err", err.Error())
		return nil, err
	}

	s.logger.InfoContext(ctx, "vlsm allocation computed", "cidr", input.CIDR, "subnets", len(allocations))
	return allocations, nil
}
