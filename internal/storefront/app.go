// Package storefront composes the catalog, cart and checkout servers into the
// single HTTP surface the presentation layer consumes.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Sabwear/internal/cart"
	"Sabwear/internal/catalog"
	"Sabwear/internal/checkout"
	"Sabwear/internal/session"
	"Sabwear/pkg/kit"
)

type Deps struct {
	Catalog  *catalog.Server
	Cart     *cart.Server
	Checkout *checkout.Server

	// Sessions verifies the signed session cookie; nil means header-only
	// session identity.
	Sessions *session.TokenMaker
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const readyTimeout = 1 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	r.Route("/api", func(api chi.Router) {
		api.Use(session.Middleware(deps.Sessions))

		deps.Catalog.Register(api)
		deps.Cart.Register(api)
		deps.Checkout.Register(api)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.RoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		checks := map[string]func(context.Context) error{
			"catalog":  deps.Catalog.Store.Ping,
			"cart":     deps.Cart.Store.Ping,
			"checkout": deps.Checkout.Store.Ping,
		}

		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"store": name})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}
