package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"mesa-billing/internal/core/port"
)

// TokenVerifier resolves a bearer token to the authenticated user id.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the billing, tracker and analytics use cases, a token verifier
// for the bearer middleware and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	billing   port.BillingUseCase
	tracker   port.TrackerUseCase
	analytics port.AnalyticsUseCase
	tokens    TokenVerifier
	validate  *validator.Validate
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Everything under
// /api/v1 requires a bearer token; /healthz does not.
func NewHandler(
	billing port.BillingUseCase,
	tracker port.TrackerUseCase,
	analytics port.AnalyticsUseCase,
	tokens TokenVerifier,
	logger *slog.Logger,
	allowedOrigins []string,
) *Handler {
	h := &Handler{
		billing:   billing,
		tracker:   tracker,
		analytics: analytics,
		tokens:    tokens,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/billing", func(r chi.Router) {
			r.Get("/account", h.handleGetAccount)
			r.Put("/payment-mode", h.handleSetPaymentMode)
			r.Post("/payment-method", h.handleSetPaymentMethod)
			r.Put("/threshold", h.handleSetThreshold)
			r.Post("/manual-payment", h.handleManualPayment)
			r.Post("/accrue-cost", h.handleAccrueCost)
		})

		r.Patch("/ads/{id}/impression", h.handleImpression)
		r.Patch("/ads/{id}/click", h.handleClick)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", h.handleOverview)
			r.Get("/trends", h.handleTrends)
			r.Get("/top-campaigns", h.handleTopCampaigns)
			r.Get("/campaigns", h.handleCampaignPerformance)
			r.Get("/ads", h.handleAdPerformance)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
