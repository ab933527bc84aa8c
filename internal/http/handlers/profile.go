package handlers

import "net/http"

// GetProfile handles GET /profil; it refreshes on first access so the UI
// always sees a concrete profile.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.session.Profile()
	if !ok {
		if err := h.session.RefreshProfile(r.Context()); err != nil {
			writeAppError(w, r, err)
			return
		}
		p, _ = h.session.Profile()
	}
	writeJSON(w, r, http.StatusOK, p)
}

type onlineUpdate struct {
	Online bool `json:"online"`
}

// SetOnline handles PUT /online.
func (h *Handlers) SetOnline(w http.ResponseWriter, r *http.Request) {
	var body onlineUpdate
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.session.SetOnline(r.Context(), body.Online); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
