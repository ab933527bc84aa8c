package handlers

import (
	"net/http"

	"service-livreur-client/internal/domain"
)

// ListAvailableRequests handles GET /demandes/disponibles.
func (h *Handlers) ListAvailableRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().AvailableRequests())
}

// ListMyRequests handles GET /demandes/mes.
func (h *Handlers) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().MyRequests())
}

// ClaimRequest handles POST /demandes/{id}/claim.
func (h *Handlers) ClaimRequest(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.session.ClaimRequest(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, req)
}

// AdvanceRequest handles PUT /demandes/{id}/statut.
func (h *Handlers) AdvanceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body statusUpdate
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := h.session.AdvanceRequest(r.Context(), id, domain.RequestStatus(body.Status)); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
