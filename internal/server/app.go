// Package server wires the account server: it opens the configured
// credential store, serves the AccountService over gRPC and shuts down on
// SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/server/config"
	"github.com/dmitrijs2005/securelogin/internal/store"

	gs "github.com/dmitrijs2005/securelogin/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    store.Store
	accounts accounts.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, logging.FormatJSON)

	st, err := store.Open(ctx, c.StoreOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	svc := accounts.NewLocalService(st, nil, logger)

	return &App{config: c, logger: logger, store: st, accounts: svc}, nil
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

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.StoreKind)

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts,
		gs.WithRateLimit(app.config.RateLimit, app.config.RateBurst),
		gs.WithShutdownTimeout(app.config.ShutdownTimeout),
	)

	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, runErr.Error())
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error(context.Background(), "store close failed", "error", err)
	}
	return runErr
}
