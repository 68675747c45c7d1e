// Package server wires configuration, storage, services and transports
// into the running FoundrMate backend and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/dbx"
	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/config"
	gs "github.com/dmitrijs2005/foundrmate/internal/server/grpc"
	"github.com/dmitrijs2005/foundrmate/internal/server/httpapi"
	"github.com/dmitrijs2005/foundrmate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/foundrmate/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	dbPingTimeout   = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	redis      *redis.Client
	router     http.Handler
	grpcServer *gs.GRPCServer
}

// NewApp connects to PostgreSQL, applies migrations and assembles the
// transports. The returned App owns the database pool.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := dbx.Open(ctx, repomanager.DriverName, c.DatabaseDSN, dbPingTimeout)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var rdb *redis.Client
	if c.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
	}

	return assemble(c, logger, db, rm, rdb), nil
}

func assemble(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager, rdb *redis.Client) *App {
	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.TokenValidityDuration)
	users := services.NewUserService(db, rm, tokens, c.BcryptCost, logger)
	ideas := services.NewIdeaService(services.StaticAnalyzer{}, logger)

	var limiter httpapi.Limiter
	if rdb != nil {
		limiter = httpapi.NewRedisLimiter(rdb, c.RateLimitRequests, c.RateLimitWindow)
	}

	gin.SetMode(gin.ReleaseMode)

	app := &App{
		config: c,
		logger: logger,
		db:     db,
		redis:  rdb,
		router: httpapi.NewRouter(httpapi.Options{
			Users:          users,
			Ideas:          ideas,
			Tokens:         tokens,
			Limiter:        limiter,
			AllowedOrigin:  c.AllowedOrigin,
			TrustedProxies: c.TrustedProxies,
			Logger:         logger,
		}),
	}

	if c.EndpointAddrGRPC != "" {
		app.grpcServer = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, users, ideas, tokens)
	}

	return app
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or a
// server fails, then releases the database and Redis clients.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.grpcServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close", "error", err)
		}
	}
}
