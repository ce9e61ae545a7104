// Package app assembles the dashboard: configuration, logging, storage,
// services, routing, and the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/lzamboni86/dp-dashboardpos/internal/config"
	apierrors "github.com/lzamboni86/dp-dashboardpos/internal/errors"
	"github.com/lzamboni86/dp-dashboardpos/internal/infrastructure"
	custommw "github.com/lzamboni86/dp-dashboardpos/internal/middleware"
	"github.com/lzamboni86/dp-dashboardpos/internal/services"
	"github.com/lzamboni86/dp-dashboardpos/internal/store"
	handlers "github.com/lzamboni86/dp-dashboardpos/internal/transport/http"
	ws "github.com/lzamboni86/dp-dashboardpos/internal/websocket"
	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts"
)

const appName = "dp-dashboardpos"

// Application is the main application container.
type Application struct {
	Config         *config.Config
	Router         *chi.Mux
	Server         *http.Server
	Store          *store.Store
	WebSocketHub   *ws.Hub
	DatasetService *services.DatasetService
	Logger         *slog.Logger
	FrontendFS     fs.FS

	upgrader websocket.Upgrader
}

// NewApplication builds a fully wired application. frontendFS may be nil,
// in which case only the API is served.
func NewApplication(frontendFS fs.FS) (*Application, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", appName),
		slog.String("version", contracts.Version),
		slog.Int("port", cfg.Server.Port))

	app := &Application{
		Config:     cfg,
		Logger:     logger,
		FrontendFS: frontendFS,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				// The dashboard is same-origin; upgrades come from pages we
				// served ourselves.
				return true
			},
		},
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices opens the store, starts the websocket hub, and primes
// the dataset service. A store that cannot be opened is fatal: the session
// cannot proceed without persistence.
func (a *Application) initializeServices() error {
	st, err := store.New(a.Config.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.Store = st

	hub := ws.NewHub(a.Logger)
	hub.Start()
	a.WebSocketHub = hub

	a.DatasetService = services.NewDatasetService(st, hub, a.Config.Upload.MaxRecords, a.Logger)

	// Prime the current dataset from storage. Failures here are logged and
	// swallowed; the dashboard starts empty instead of refusing to start.
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.DatasetService.LoadInitial(loadCtx)

	return nil
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)

	// WebSocket route stays outside the logging/limiting group; wrapped
	// response writers break the upgrade.
	r.HandleFunc("/ws", a.handleWebSocket)

	// Prometheus metrics outside the middleware group as well.
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(custommw.StructuredLogger(a.Logger))
		r.Use(custommw.Recoverer(a.Logger))
		r.Use(custommw.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(custommw.CORS(custommw.CORSConfig{
				AllowedOrigins: a.Config.Security.AllowedOrigins,
			}))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(custommw.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		errorHandler := apierrors.NewErrorHandler(a.Logger)

		r.Route("/api", func(r chi.Router) {
			r.Mount("/data", handlers.NewDataHandler(
				a.DatasetService,
				a.Config.Upload.MaxFileBytes,
				a.Logger,
				errorHandler,
			).Routes())
			r.Get("/healthz", handlers.NewHealthHandler(a.DatasetService, a.Logger).HealthCheck)
		})

		a.setupFrontend(r)
	})

	a.Router = r
}

// setupFrontend serves the embedded single-page dashboard.
func (a *Application) setupFrontend(r chi.Router) {
	if a.FrontendFS == nil {
		a.Logger.Warn("frontend filesystem not available, serving API only")
		return
	}

	fileServer := http.FileServer(http.FS(a.FrontendFS))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, a.FrontendFS, "index.html")
	})
	r.Get("/*", fileServer.ServeHTTP)
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run serves until the context is cancelled or an interrupt arrives, then
// shuts down gracefully within the configured timeout.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server listening",
			slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

func (a *Application) shutdown() error {
	a.Logger.Info("shutting down application")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.WebSocketHub.Stop()

	if err := a.Store.Close(); err != nil {
		a.Logger.Error("error closing store", slog.String("error", err.Error()))
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.Error("error closing log file", slog.String("error", err.Error()))
	}

	a.Logger.Info("application shutdown complete")
	return nil
}

// handleWebSocket upgrades the connection and hands it to the hub.
func (a *Application) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Logger.Error("websocket upgrade failed",
			slog.String("error", err.Error()),
			slog.String("remote_addr", r.RemoteAddr))
		return
	}

	client := ws.NewClient(a.WebSocketHub, conn,
		a.Config.WebSocket.PingPeriod,
		a.Config.WebSocket.PongWait,
		a.Logger)
	client.Serve()
}
