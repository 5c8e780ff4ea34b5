// Package httpapi exposes the account service over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"wallmagic/internal/logging"
	"wallmagic/internal/server/accounts"
	"wallmagic/internal/server/config"
	"wallmagic/internal/server/metrics"
	"wallmagic/internal/server/models"
)

// accountService is the slice of the accounts service the HTTP layer needs.
type accountService interface {
	Register(ctx context.Context, params accounts.RegisterParams) (*accounts.AuthResult, error)
	Login(ctx context.Context, email string, password string) (*accounts.AuthResult, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type HTTPServer struct {
	address  string
	accounts accountService
	logger   logging.Logger
	metrics  metrics.Recorder
	gatherer prometheus.Gatherer
	appName  string
	version  string
	origins  []string
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, svc accountService, rec metrics.Recorder, g prometheus.Gatherer) (*HTTPServer, error) {
	return &HTTPServer{
		address:  cfg.EndpointAddr,
		accounts: svc,
		logger:   l.With("module", "http_server"),
		metrics:  rec,
		gatherer: g,
		appName:  cfg.AppName,
		version:  cfg.Version,
		origins:  cfg.CORSOrigins(),
	}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
