package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"mesa-billing/internal/core/domain"
)

type paymentModeRequest struct {
	PaymentMode string `json:"paymentMode" validate:"required"`
}

type paymentMethodRequest struct {
	Type     string `json:"type" validate:"required"`
	LastFour string `json:"lastFour" validate:"required"`
	Expiry   string `json:"expiry" validate:"required"`
}

type thresholdRequest struct {
	Threshold *decimal.Decimal `json:"threshold" validate:"required"`
}

type amountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type costRequest struct {
	Cost *decimal.Decimal `json:"cost" validate:"required"`
}

// handleGetAccount returns the caller's billing account, creating it with
// defaults on first access.
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.billing.GetAccount(r.Context(), userID(r))
	if err != nil {
		h.fail(w, r, "get account", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

func (h *Handler) handleSetPaymentMode(w http.ResponseWriter, r *http.Request) {
	var req paymentModeRequest
	if !h.decode(w, r, &req) {
		return
	}
	mode, err := domain.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		h.fail(w, r, "set payment mode", err)
		return
	}
	acct, err := h.billing.SetPaymentMode(r.Context(), userID(r), mode)
	if err != nil {
		h.fail(w, r, "set payment mode", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

func (h *Handler) handleSetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if !h.decode(w, r, &req) {
		return
	}
	acct, err := h.billing.SetPaymentMethod(r.Context(), userID(r), domain.PaymentMethod{
		Type:     req.Type,
		LastFour: req.LastFour,
		Expiry:   req.Expiry,
	})
	if err != nil {
		h.fail(w, r, "set payment method", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

func (h *Handler) handleSetThreshold(w http.ResponseWriter, r *http.Request) {
	var req thresholdRequest
	if !h.decode(w, r, &req) {
		return
	}
	acct, err := h.billing.SetThreshold(r.Context(), userID(r), *req.Threshold)
	if err != nil {
		h.fail(w, r, "set threshold", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

func (h *Handler) handleManualPayment(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !h.decode(w, r, &req) {
		return
	}
	acct, err := h.billing.ApplyManualPayment(r.Context(), userID(r), *req.Amount)
	if err != nil {
		h.fail(w, r, "manual payment", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

// handleAccrueCost records ad spend for the caller. Settlement happens
// inside the use case; the response is the account after settlement.
func (h *Handler) handleAccrueCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if !h.decode(w, r, &req) {
		return
	}
	acct, err := h.billing.AccrueCost(r.Context(), userID(r), *req.Cost)
	if err != nil {
		h.fail(w, r, "accrue cost", err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}
