// Package server assembles the billing HTTP handler: Connect services,
// plain JSON aliases, the PDF route, health and metrics.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/mailer"
	"github.com/elsafrica/billing/internal/metrics"
	"github.com/elsafrica/billing/internal/middleware"
	"github.com/elsafrica/billing/internal/render"
	"github.com/elsafrica/billing/internal/service"
	"github.com/elsafrica/billing/internal/storage"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

// Options carries everything the handler needs.
type Options struct {
	Store        storage.Store
	JWT          *auth.JWTManager
	Metrics      *metrics.Metrics
	Thresholds   calculator.Thresholds
	BatchWorkers int
	PDF          render.Options
	Logger       *slog.Logger

	// Authenticator defaults to a bcrypt PasswordAuthenticator over Store.
	Authenticator auth.Authenticator

	// Mailer sends password reset links to ResetURL+token, valid for
	// ResetTTL. Without one, links are only logged.
	Mailer   mailer.Mailer
	ResetURL string
	ResetTTL time.Duration
}

// Handler builds the routed handler wrapped in CORS and request logging.
func Handler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Authenticator == nil {
		opts.Authenticator = auth.NewPasswordAuthenticator(opts.Store)
	}

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(opts.Logger),
		middleware.MetricsInterceptor(opts.Metrics),
		middleware.RequireAuth(opts.JWT, opts.Store, billingv1connect.PublicProcedures...),
	)

	accounts := service.NewAccountService(opts.Store, opts.Thresholds, opts.BatchWorkers, opts.Metrics)
	packages := service.NewPackageService(opts.Store)
	invoices := service.NewInvoiceService(opts.Store, opts.PDF)
	authSvc := service.NewAuthService(opts.Authenticator, opts.JWT, opts.Store, opts.Logger)
	if opts.Mailer != nil {
		authSvc = authSvc.WithPasswordReset(opts.Mailer, opts.ResetURL, opts.ResetTTL)
	}

	mux := http.NewServeMux()
	mux.Handle(billingv1connect.NewAccountServiceHandler(accounts, interceptors))
	mux.Handle(billingv1connect.NewPackageServiceHandler(packages, interceptors))
	mux.Handle(billingv1connect.NewInvoiceServiceHandler(invoices, interceptors))
	mux.Handle(billingv1connect.NewAssetServiceHandler(service.NewAssetService(opts.Store), interceptors))
	mux.Handle(billingv1connect.NewUserServiceHandler(service.NewUserService(opts.Store), interceptors))
	mux.Handle(billingv1connect.NewAuthServiceHandler(authSvc, interceptors))

	mux.Handle("POST /status/classify", billingv1connect.NewClassifyStatusHandler(accounts, interceptors))
	mux.Handle("POST /invoice/totals", billingv1connect.NewComputeTotalsHandler(invoices, interceptors))
	mux.Handle("GET /invoices/{id}/pdf", middleware.RequireAuthHTTP(opts.JWT, opts.Store, invoices.PDFHandler()))

	mux.Handle("GET /metrics", opts.Metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	return middleware.Logging(middleware.CORS(mux))
}
