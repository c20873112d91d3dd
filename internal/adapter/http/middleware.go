package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey struct{}

// authenticate rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			h.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, err := h.tokens.Verify(raw)
		if err != nil {
			h.logger.Debug("token rejected", slog.Any("error", err))
			h.writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// userID returns the authenticated user of the request.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}
