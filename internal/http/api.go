package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Flarenzy/subnet-calc/internal/auth"
	"github.com/Flarenzy/subnet-calc/internal/domain"
)

type API struct {
	Logger        *slog.Logger
	Service       domain.CalculatorService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, service domain.CalculatorService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/networks/report", a.handleNetworkReport)
	mux.HandleFunc("POST /api/v1/networks/vlsm", a.handleVLSM)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
