package httpadapter

import (
	"net/http"
)

// handleOverview returns the dashboard totals with their trend labels.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analytics.Overview(r.Context())
	if err != nil {
		h.fail(w, r, "overview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTrends(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analytics.Trends(r.Context())
	if err != nil {
		h.fail(w, r, "trends", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTopCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analytics.TopCampaigns(r.Context())
	if err != nil {
		h.fail(w, r, "top campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCampaignPerformance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analytics.CampaignPerformance(r.Context())
	if err != nil {
		h.fail(w, r, "campaign performance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAdPerformance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analytics.AdPerformance(r.Context())
	if err != nil {
		h.fail(w, r, "ad performance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
