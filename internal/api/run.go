package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/subnet-calc/internal/auth"
	"github.com/Flarenzy/subnet-calc/internal/domain"
	apihttp "github.com/Flarenzy/subnet-calc/internal/http"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled  bool
	AuthIssuer   string
	AuthJWKSURL  string
	AuthAudience string
}

func LoadConfig() Config {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		AuthEnabled:  os.Getenv("AUTH_ENABLED") == "true",
		AuthIssuer:   os.Getenv("AUTH_ISSUER"),
		AuthJWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		AuthAudience: os.Getenv("AUTH_AUDIENCE"),
	}

	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	return cfg
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, listener)
}

func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	service := domain.NewLoggingCalculatorService(logger, domain.NewCalculatorService())

	api := apihttp.NewAPI(logger, service, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving subnet calculator api", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}
