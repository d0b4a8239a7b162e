// Package server assembles the RecipeKeeper server: it opens the database,
// applies migrations, builds the services and runs the HTTP API and the gRPC
// health endpoint until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/auth"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	gs "github.com/dmitrijs2005/recipekeeper/internal/server/grpc"
	"github.com/dmitrijs2005/recipekeeper/internal/server/httpx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipekeeper/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp validates c, connects to the database and applies migrations. The
// returned App owns the connection pool until Run returns.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	hasher := auth.NewPasswordHasher(c.BcryptCost)

	us := services.NewUserService(db, rm, tokens, hasher, logger)
	rs := services.NewRecipeService(db, rm, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "recipekeeper"),
	)

	handler := httpx.NewRouter(httpx.NewHandler(us, rs, logger), tokens, httpx.NewMetrics(reg), reg, logger)

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
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

// Run serves until ctx is cancelled, a signal arrives or one of the servers
// fails, then waits for both servers to stop and closes the database. The
// first server error is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"http_addr", app.config.EndpointAddrHTTP,
		"grpc_addr", app.config.EndpointAddrGRPC,
		"db_driver", app.config.DatabaseDriver,
	)

	app.initSignalHandler(cancelFunc)

	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		s := httpx.NewHTTPServer(app.config.EndpointAddrHTTP, app.handler, app.logger)
		if err := s.Run(ctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	grp.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.db, app.config.HealthCheckInterval)
		if err := s.Run(ctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	err := grp.Wait()
	if err != nil {
		app.logger.Error(ctx, "server failed", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close failed", "error", cerr)
	}
	app.logger.Info(ctx, "App stopped")

	return err
}
