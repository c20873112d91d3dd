package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.writeError(w, http.StatusBadRequest, "invalid field "+verrs[0].Field()+": "+verrs[0].Tag())
			return false
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// fail maps a use case error onto a status code. Unexpected errors are
// logged and reported as 500 without details.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("user_id", userID(r)),
		)
		h.writeError(w, status, "internal error")
		return
	}
	h.writeError(w, status, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownPaymentMode),
		errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidModeTransition), errors.Is(err, domain.ErrInvalidMode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, port.ErrLockTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
