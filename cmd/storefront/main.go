package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Sabwear/internal/cart"
	"Sabwear/internal/catalog"
	"Sabwear/internal/checkout"
	"Sabwear/internal/config"
	"Sabwear/internal/session"
	"Sabwear/internal/storefront"
	"Sabwear/pkg/kit"
)

func main() {
	cfg := config.Load()

	service := "storefront"
	log := kit.NewLogger(service, cfg.Server.Env)
	defer func() { _ = log.Sync() }()

	products := catalog.NewMemStore()
	carts := cart.NewMemStore(products)
	orders := checkout.NewMemStore()

	var sessions *session.TokenMaker
	if cfg.Session.Secret != "" {
		sessions = session.NewTokenMaker(cfg.Session.Secret)
	} else {
		log.Warn("SESSION_SECRET unset, session cookies will not be verified")
	}

	limiter := kit.NewIPRateLimiter(cfg.Checkout.RateLimit, cfg.Checkout.RateWindow)

	deps := storefront.Deps{
		Catalog: &catalog.Server{Store: products, Log: log},
		Cart:    &cart.Server{Store: carts, Log: log},
		Checkout: &checkout.Server{
			Store:         orders,
			Products:      products,
			Regions:       checkout.DefaultRegions(),
			Log:           log,
			SubmitLimiter: limiter.Middleware,
		},
		Sessions: sessions,
	}

	reg := prometheus.NewRegistry()
	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(":"+cfg.Server.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
