// Package server wires the shop backend together: configuration, logging,
// the relational store with its migrations, the services and the gRPC
// endpoint, and runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/config"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shopkeeper/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/shopkeeper/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(context.Background(), c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	hasher, err := cryptox.NewHasher(c.HashAlgorithm, c.HashPepper)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	accounts := services.NewAccountService(db, rm, hasher, logger)
	catalog := services.NewCatalogService(db, rm, logger)
	carts := services.NewCartService(db, rm, logger)

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, accounts, catalog, gs.CartsOf(carts),
		c.SecretKey, c.AccessTokenValidityDuration)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

// signalNotify and signalStop are seams over os/signal for tests.
var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

// waitForSignal cancels the app when a termination signal arrives and
// returns once either that happens or ctx is done. The signal registration
// is released in both cases.
func (app *App) waitForSignal(ctx context.Context, cancel context.CancelFunc) error {
	sigs := make(chan os.Signal, 1)
	signalNotify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signalStop(sigs)

	select {
	case sig := <-sigs:
		app.logger.Info(ctx, "Shutdown signal received", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.waitForSignal(gctx, cancel)
	})
	g.Go(func() error {
		// a server that stops on its own must release the signal watcher
		defer cancel()
		return app.server.Run(gctx)
	})

	err := g.Wait()

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(context.Background(), "db close error", "error", cerr)
	}

	if err != nil {
		app.logger.Error(context.Background(), err.Error())
		return err
	}

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
