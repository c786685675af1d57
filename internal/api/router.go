package api

import (
	"context"
	"encoding/json"
	"lending-admin/internal/api/handler"
	mw "lending-admin/internal/api/middleware"
	"lending-admin/internal/config"
	"lending-admin/internal/domain/borrower"
	"log/slog"
	"net/http"
	"time"

	_ "lending-admin/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const defaultRequestTimeout = 60 * time.Second

type Services struct {
	Borrowers borrower.BorrowerService
	Listing   handler.ListingService
	Refresher handler.SnapshotRefresher
}

// SetupRouter wires every route. ctx bounds background work started by
// middleware such as the rate limiter cleanup loop.
func SetupRouter(ctx context.Context, svc Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(ctx, router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	setupBorrowerRoutes(router, cfg, svc, logger)
	setupCustomerRoutes(router, cfg, svc.Listing, logger)
	router.Get("/health", healthHandler(svc.Listing))
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(ctx context.Context, router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(timeout))
	router.Use(mw.NewRateLimiterMiddleware(ctx, cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(cfg.Server.Auth, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})
}

func setupBorrowerRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewBorrowerHandler(svc.Borrowers, svc.Listing, svc.Refresher, cfg.Listing.DefaultPageSize, logger)

	router.Route("/borrowers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListBorrowers)
		r.Post("/", h.CreateBorrower)
		r.Post("/refresh", h.RefreshBorrowers)
		r.Route("/{borrowerID}", func(r chi.Router) {
			r.Put("/", h.UpdateBorrower)
			r.Delete("/", h.DeleteBorrower)
		})
	})
}

func setupCustomerRoutes(router *chi.Mux, cfg *config.Config, ls handler.ListingService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(ls, logger)

	router.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListCustomers)
	})
}

type healthResponse struct {
	Status          string `json:"status"`
	SnapshotVersion uint64 `json:"snapshotVersion"`
	SnapshotError   string `json:"snapshotError,omitempty"`
}

// healthHandler stays 200 while the snapshot is failed; the process itself is
// healthy and the list recovers on the next successful reload.
func healthHandler(ls handler.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ls.Summary()
		resp := healthResponse{Status: "ok", SnapshotVersion: snap.Version}
		if snap.Failed() {
			resp.Status = "degraded"
			resp.SnapshotError = snap.Err.Error()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
