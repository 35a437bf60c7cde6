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

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/config"
	"github.com/elsafrica/billing/internal/mailer"
	"github.com/elsafrica/billing/internal/metrics"
	"github.com/elsafrica/billing/internal/render"
	"github.com/elsafrica/billing/internal/server"
	"github.com/elsafrica/billing/internal/storage/sqlite"
	"github.com/elsafrica/billing/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var resetMailer mailer.Mailer = mailer.NewLog(nil)
	if cfg.SendGridAPIKey != "" {
		sg, err := mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom)
		if err != nil {
			slog.Error("Failed to configure mailer", "error", err)
			os.Exit(1)
		}
		resetMailer = sg
	} else {
		slog.Warn("SENDGRID_API_KEY not set, password reset links will only be logged")
	}

	handler := server.Handler(server.Options{
		Store:        store,
		JWT:          auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL),
		Metrics:      metrics.New(),
		Thresholds:   cfg.Thresholds,
		BatchWorkers: cfg.BatchWorkers,
		PDF:          render.Options{CompanyName: cfg.CompanyName, Currency: cfg.Currency},
		Mailer:       resetMailer,
		ResetURL:     cfg.ResetURL,
		ResetTTL:     cfg.ResetTTL,
	})

	// h2c serves HTTP/2 without TLS, which Connect clients prefer.
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Billing server starting",
			"address", cfg.Addr,
			"env", cfg.AppEnv,
			"due_after_days", cfg.Thresholds.DueAfterDays,
			"overdue_after_days", cfg.Thresholds.OverdueAfterDays,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			store.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
