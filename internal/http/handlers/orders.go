package handlers

import (
	"net/http"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
)

// ListAvailableOrders handles GET /commandes/disponibles.
func (h *Handlers) ListAvailableOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().AvailableOrders())
}

// ListMyOrders handles GET /commandes/mes.
func (h *Handlers) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.session.Store().MyOrders())
}

// ClaimOrder handles POST /commandes/{id}/claim.
func (h *Handlers) ClaimOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.session.ClaimOrder(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, o)
}

// IgnoreOrder handles POST /commandes/{id}/ignore.
func (h *Handlers) IgnoreOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	h.session.IgnoreOrder(id)
	w.WriteHeader(http.StatusNoContent)
}

type statusUpdate struct {
	Status string `json:"statut"`
}

// AdvanceOrder handles PUT /commandes/{id}/statut.
func (h *Handlers) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body statusUpdate
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := h.session.AdvanceOrder(r.Context(), id, domain.OrderStatus(body.Status)); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type estimateResponse struct {
	Estimate float64 `json:"estimation"`
}

// EstimateOrder handles GET /commandes/{id}/estimation.
func (h *Handlers) EstimateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	transport, err := h.transport(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	v, err := h.estimator.Estimate(r.Context(), id, transport)
	if err != nil {
		h.logger.Warn("order estimate failed", logx.Int64("order_id", id), logx.Any("err", err))
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, estimateResponse{Estimate: v})
}
