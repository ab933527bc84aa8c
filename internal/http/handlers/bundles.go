package handlers

import (
	"net/http"

	"service-livreur-client/internal/logx"
)

// ListAvailableBundles handles GET /lots/disponibles.
func (h *Handlers) ListAvailableBundles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().AvailableBundles())
}

// ListMyBundles handles GET /lots/mes.
func (h *Handlers) ListMyBundles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().MyBundles())
}

// ClaimBundle handles POST /lots/{id}/claim.
func (h *Handlers) ClaimBundle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	b, err := h.session.ClaimBundle(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, b)
}

// EstimateBundle handles GET /lots/{id}/estimation.
func (h *Handlers) EstimateBundle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	b, ok := h.session.Store().Bundle(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	transport, err := h.transport(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	v, err := h.estimator.EstimateBundle(r.Context(), b, transport)
	if err != nil {
		h.logger.Warn("bundle estimate failed", logx.Int64("bundle_id", id), logx.Any("err", err))
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, estimateResponse{Estimate: v})
}
