package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Flarenzy/subnet-calc/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	// The calculator is stateless: once the server accepts connections it
	// is ready.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Describe a single network
// @Description Computes mask, network, broadcast and the usable host range for an IP/prefix pair.
// @Tags networks
// @Accept json
// @Produce json
// @Param payload body NetworkReportRequest true "Network to describe"
// @Success 200 {object} NetworkReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/report [post]
func (a *API) handleNetworkReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.requestLogger(r)

	req, err := decode[NetworkReportRequest](r)
	defer r.Body.Close()
	if err != nil {
		logger.ErrorContext(ctx, "unmarshaling report request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := req.validate(); err != nil {
		logger.DebugContext(ctx, "invalid report request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := a.Service.NetworkReport(ctx, domain.ReportInput{CIDR: req.CIDR})
	if err != nil {
		a.respondServiceError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, reportToResponse(report))
}

// @Summary Partition a network with VLSM
// @Description Allocates non-overlapping sub-networks sized for the requested host counts, packed largest-first and returned in address order.
// @Tags networks
// @Accept json
// @Produce json
// @Param payload body VLSMRequest true "Base network and host counts"
// @Success 200 {array} SubnetAllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/vlsm [post]
func (a *API) handleVLSM(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.requestLogger(r)

	req, err := decode[VLSMRequest](r)
	defer r.Body.Close()
	if err != nil {
		logger.ErrorContext(ctx, "unmarshaling vlsm request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := req.validate(); err != nil {
		logger.DebugContext(ctx, "invalid vlsm request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	allocations, err := a.Service.AllocateSubnets(ctx, domain.AllocateInput{CIDR: req.CIDR, Hosts: req.Hosts})
	if err != nil {
		a.respondServiceError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, allocationsToResponse(allocations))
}

// respondServiceError maps domain errors to status codes. Allocation
// failures carry the offending demand's index in their message, so the
// error text goes to the client verbatim.
func (a *API) respondServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	var tooSmall *domain.PrefixTooSmallError
	var noFit *domain.DoesNotFitError

	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.As(err, &tooSmall), errors.As(err, &noFit):
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		a.requestLogger(r).ErrorContext(ctx, "uncaught service error", "err", err.Error())
		a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.requestLogger(r).ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
