// Package handlers exposes the driver session over a local HTTP API, the
// surface a UI in front of the agent talks to.
package handlers

import (
	"net/http"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	session   Session
	estimator Estimator
	logger    logx.Logger
}

// New creates a Handlers instance.
func New(session Session, estimator Estimator, logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{session: session, estimator: estimator, logger: logger}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "route not found")
}

// transport resolves the driver's transport mode, refreshing the profile on
// first use.
func (h *Handlers) transport(r *http.Request) (domain.TransportMode, error) {
	p, ok := h.session.Profile()
	if !ok {
		if err := h.session.RefreshProfile(r.Context()); err != nil {
			return "", err
		}
		p, _ = h.session.Profile()
	}
	return p.Transport, nil
}
