package receipts

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ReceiptPoints/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// AdminJWTSecret enables the /admin routes when non-empty.
	AdminJWTSecret string

	// ProcessLimitPerMin overrides the per-IP submission limit; zero or
	// negative keeps the default.
	ProcessLimitPerMin int
}

const (
	processLimitPerMin = 60
	limitWindow        = 60 * time.Second
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	metricsOn := deps.MetricsEnabled && deps.Registry != nil
	if deps.MetricsEnabled && deps.Registry == nil {
		deps.Log.Warn("metrics enabled but Registry is nil")
	}

	setupMiddleware(r, deps)
	setupRoutes(r, s, deps, metricsOn)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePatternOrPath))
	}
}

func setupRoutes(r *chi.Mux, s *Server, deps HTTPDeps, metricsOn bool) {
	limit := deps.ProcessLimitPerMin
	if limit <= 0 {
		limit = processLimitPerMin
	}
	processLimiter := kit.NewIPRateLimiter(limit, int(limitWindow.Seconds()))

	r.Route("/receipts", func(rr chi.Router) {
		rr.With(processLimiter.Middleware).Post("/process", s.ProcessHandler())
		rr.Get("/{id}/points", s.PointsHandler())
	})

	if deps.AdminJWTSecret != "" {
		admin := NewTokenMaker(deps.AdminJWTSecret)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(RequireAdmin(admin))
			rr.Get("/stats", s.StatsHandler())
		})
	}

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.handleReady)

	if metricsOn {
		r.With(kit.BearerAuth(deps.MetricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
		)
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
