package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "fleetservice/internal/app"
	"fleetservice/internal/entities"
	"fleetservice/internal/handlers/rest/assignment_post"
	"fleetservice/internal/handlers/rest/assignments_get"
	"fleetservice/internal/handlers/rest/fuellog_lastkm_get"
	"fleetservice/internal/handlers/rest/fuellog_post"
	"fleetservice/internal/handlers/rest/fuellogs_get"
	"fleetservice/internal/handlers/rest/healthcheck_head"
	"fleetservice/internal/handlers/rest/login_post"
	"fleetservice/internal/handlers/rest/maintenance_interval_put"
	"fleetservice/internal/handlers/rest/maintenance_service_post"
	"fleetservice/internal/handlers/rest/maintenance_units_get"
	"fleetservice/internal/handlers/rest/operator_delete"
	"fleetservice/internal/handlers/rest/operator_post"
	"fleetservice/internal/handlers/rest/operator_put"
	"fleetservice/internal/handlers/rest/operators_get"
	"fleetservice/internal/handlers/rest/override_issue_post"
	"fleetservice/internal/handlers/rest/override_redeem_post"
	"fleetservice/internal/handlers/rest/ping_get"
	"fleetservice/internal/handlers/rest/unit_delete"
	"fleetservice/internal/handlers/rest/unit_get"
	"fleetservice/internal/handlers/rest/unit_post"
	"fleetservice/internal/handlers/rest/unit_put"
	"fleetservice/internal/handlers/rest/units_get"
	"fleetservice/internal/handlers/rest/user_post"
	"fleetservice/internal/pkg/config"
	"fleetservice/internal/pkg/dotenv"
	metrics_system "fleetservice/internal/pkg/metrics"
	"fleetservice/internal/pkg/middlewares/auth"
	"fleetservice/internal/pkg/middlewares/graceful_shutdown"
	"fleetservice/internal/pkg/middlewares/metrics"
	"fleetservice/internal/pkg/middlewares/rate_limiter"
	"fleetservice/internal/pkg/middlewares/timeout"
	"fleetservice/internal/pkg/postgres"
	"fleetservice/pkg/logger"
	"fleetservice/pkg/logger/zap_adapter"
	"fleetservice/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fleet-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // the shutdown path deliberately derives from context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must not be cancelled on SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// main http server

	// pprof http server
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, this case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not inherit from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/unit/{id}", unit_get.New(log, app.ServiceCompliance)).Methods("GET")
	router.Handle("/units", units_get.New(log, app.ServiceUnit)).Methods("GET")
	router.Handle("/unit", unit_post.New(log, app.ServiceUnit)).Methods("POST")
	router.Handle("/unit", unit_put.New(log, app.ServiceUnit)).Methods("PUT")
	router.Handle("/unit/{id}", unit_delete.New(log, app.ServiceUnit)).Methods("DELETE")

	router.Handle("/maintenance/units", maintenance_units_get.New(log, app.ServiceUnit)).Methods("GET")
	router.Handle("/maintenance/interval/{id}", maintenance_interval_put.New(log, app.ServiceUnit)).Methods("PUT")
	router.Handle("/maintenance/service", maintenance_service_post.New(log, app.ServiceMaintenance)).Methods("POST")

	router.Handle("/operators", operators_get.New(log, app.ServiceOperator)).Methods("GET")
	router.Handle("/operator", operator_post.New(log, app.ServiceOperator)).Methods("POST")
	router.Handle("/operator", operator_put.New(log, app.ServiceOperator)).Methods("PUT")
	router.Handle("/operator/{id}", operator_delete.New(log, app.ServiceOperator)).Methods("DELETE")

	router.Handle("/assignments", assignments_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/assignment", assignment_post.New(log, app.ServiceAssignment)).Methods("POST")

	router.Handle("/override/issue", override_issue_post.New(log, app.ServiceOverride)).Methods("POST")
	router.Handle("/override/redeem", override_redeem_post.New(log, app.ServiceOverride)).Methods("POST")

	router.Handle("/fuellog", fuellog_post.New(log, app.ServiceFuelLog)).Methods("POST")
	router.Handle("/fuellogs", fuellogs_get.New(log, app.ServiceFuelLog)).Methods("GET")
	router.Handle("/fuellog/lastkm/{unitNumber}", fuellog_lastkm_get.New(log, app.ServiceFuelLog)).Methods("GET")

	router.Handle("/login", login_post.New(log, app.ServiceAuth)).Methods("POST")

	adminOnly := auth.Middleware(app.ServiceAuth, string(entities.UserAdmin))
	router.Handle("/user", adminOnly(user_post.New(log, app.ServiceAuth))).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
