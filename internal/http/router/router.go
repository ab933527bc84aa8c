// Package router assembles the agent's local HTTP surface.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-livreur-client/internal/http/handlers"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/commandes", func(r chi.Router) {
		r.Get("/disponibles", h.ListAvailableOrders)
		r.Get("/mes", h.ListMyOrders)
		r.Post("/{id}/claim", h.ClaimOrder)
		r.Post("/{id}/ignore", h.IgnoreOrder)
		r.Put("/{id}/statut", h.AdvanceOrder)
		r.Get("/{id}/estimation", h.EstimateOrder)
	})

	r.Route("/lots", func(r chi.Router) {
		r.Get("/disponibles", h.ListAvailableBundles)
		r.Get("/mes", h.ListMyBundles)
		r.Post("/{id}/claim", h.ClaimBundle)
		r.Get("/{id}/estimation", h.EstimateBundle)
	})

	r.Route("/demandes", func(r chi.Router) {
		r.Get("/disponibles", h.ListAvailableRequests)
		r.Get("/mes", h.ListMyRequests)
		r.Post("/{id}/claim", h.ClaimRequest)
		r.Put("/{id}/statut", h.AdvanceRequest)
	})

	r.Get("/profil", h.GetProfile)
	r.Put("/online", h.SetOnline)

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
