package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loginascustomer/internal/adminauth"
	"loginascustomer/internal/analytics"
	"loginascustomer/internal/config"
	"loginascustomer/internal/customers"
	"loginascustomer/internal/database"
	"loginascustomer/internal/eligibility"
	"loginascustomer/internal/impersonation"
	"loginascustomer/internal/logger"
	"loginascustomer/internal/loginascustomer"
	"loginascustomer/internal/sessionstorage"
	"loginascustomer/internal/stores"
	"loginascustomer/internal/tokenstore"
	"loginascustomer/internal/urlbuilder"
	"loginascustomer/internal/workerqueue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel("server", cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	customerRepo := customers.NewRepository(pool)
	tokens, err := tokenstore.NewService(tokenstore.NewRepository(pool), tokenstore.Config{
		SecretKey:  []byte(cfg.LoginAsCustomer.SecretKey),
		Expiration: cfg.LoginAsCustomer.Expiration,
	})
	if err != nil {
		return err
	}

	sessions, err := sessionstorage.NewStore(sessionstorage.Config{
		Secret: []byte(cfg.Session.Secret),
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	}, logger.NewWithLevel("sessionstorage", cfg.LogLevel, os.Stdout))
	if err != nil {
		return err
	}

	audit, err := analytics.NewBehaviouralAnalytics(&analytics.Config{
		PostHogProjectKey: cfg.Analytics.PostHogProjectKey,
		PostHogHost:       cfg.Analytics.PostHogHost,
	}, logger.NewWithLevel("analytics", cfg.LogLevel, os.Stdout))
	if err != nil {
		return err
	}
	defer audit.Close()

	handler, err := loginascustomer.NewHandler(
		loginascustomer.Config{StoreManualChoice: cfg.LoginAsCustomer.StoreManualChoice},
		loginascustomer.Dependencies{
			Eligibility: eligibility.NewChecker(cfg.LoginAsCustomer.Enabled, customerRepo),
			Customers:   customerRepo,
			Stores:      stores.NewRepository(pool),
			Admins:      sessions,
			Tokens:      tokens,
			Tracker:     impersonation.NewService(),
			URLs:        urlbuilder.New(),
			Notifier:    sessions,
			Auditor:     audit,
		},
	)
	if err != nil {
		return err
	}

	workerConfig := workerqueue.DefaultConfig()
	workerConfig.MaxWorkers = cfg.Worker.Concurrency
	workerConfig.PurgeInterval = cfg.Worker.PurgeInterval
	workers, err := workerqueue.NewManager(workerConfig, pool, tokens, logger.NewWithLevel("workerqueue", cfg.LogLevel, os.Stdout))
	if err != nil {
		return err
	}
	if err := workers.Start(ctx); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		acl := adminauth.NewMiddleware(sessions, logger.NewWithLevel("adminauth", cfg.LogLevel, os.Stdout))
		loginascustomer.NewHTTPHandler(handler, sessions, logger.NewWithLevel("loginascustomer", cfg.LogLevel, os.Stdout)).
			Register(r, acl.RequireResource(adminauth.ResourceLoginAsCustomer))
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return serve(ctx, srv, workers, log)
}

type stopper interface {
	Stop(ctx context.Context) error
}

// serve runs srv until ctx is done or the listener fails, then stops the
// server and the workers in both cases.
func serve(ctx context.Context, srv *http.Server, workers stopper, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", "error", err)
	}
	return errors.Join(serveErr, workers.Stop(shutdownCtx))
}
