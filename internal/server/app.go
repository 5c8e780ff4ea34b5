// Package server initializes and runs the main application server.
// It chooses the storage backend, applies database migrations, handles
// graceful shutdown, and starts the HTTP server for the account API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"wallmagic/internal/logging"
	"wallmagic/internal/server/accounts"
	"wallmagic/internal/server/config"
	"wallmagic/internal/server/httpapi"
	"wallmagic/internal/server/metrics"
	"wallmagic/internal/server/repositories/repomanager"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	accountService *accounts.Service
	registry       *prometheus.Registry
	collector      *metrics.Collector
}

func NewApp(c *config.Config) (*App, error) {

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	sl := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger := logging.NewSlogLogger(sl)

	var (
		db  *sql.DB
		rm  repomanager.RepositoryManager
		err error
	)

	// An empty DSN selects the in-memory store, useful for local runs
	// and demos. Accounts do not survive a restart in this mode.
	if c.DatabaseDSN == "" {
		logger.Warn(context.Background(), "No database DSN configured, using in-memory store")
		rm, err = repomanager.NewInMemoryRepositoryManager()
		if err != nil {
			return nil, fmt.Errorf("store init error: %w", err)
		}
	} else {
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm, err = repomanager.NewPostgresRepositoryManager()
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	as, err := accounts.NewService(db, rm, c, logger)
	if err != nil {
		return nil, fmt.Errorf("service init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		accountService: as,
		registry:       registry,
		collector:      collector,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config, app.logger, app.accountService, app.collector, app.registry)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, fmt.Errorf("migration error: %w", err).Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}
