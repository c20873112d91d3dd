package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleImpression increments the impression counter of the {id} ad and
// returns the updated ad. Unknown ads result in HTTP 404.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	ad, err := h.tracker.RecordImpression(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "record impression", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	ad, err := h.tracker.RecordClick(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "record click", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}
