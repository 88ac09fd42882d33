package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kirakulakov/risk-management/internal/service/lookup"
)

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Factors(ctx context.Context) ([]lookup.View, error)
	Types(ctx context.Context) ([]lookup.View, error)
	Methods(ctx context.Context) ([]lookup.View, error)
	Statuses(ctx context.Context) ([]lookup.View, error)
	Probabilities(ctx context.Context) ([]lookup.View, error)
	Impacts(ctx context.Context) ([]lookup.View, error)
}

// LookupHandler serves the read-only taxonomy endpoints.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Factors handles GET /api/risks/factors.
func (h *LookupHandler) Factors(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Factors)
}

// Types handles GET /api/risks/types.
func (h *LookupHandler) Types(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Types)
}

// Methods handles GET /api/risks/management-methods.
func (h *LookupHandler) Methods(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Methods)
}

// Statuses handles GET /api/risks/statuses.
func (h *LookupHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Statuses)
}

// Probabilities handles GET /api/risks/probabilities.
func (h *LookupHandler) Probabilities(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Probabilities)
}

// Impacts handles GET /api/risks/impacts.
func (h *LookupHandler) Impacts(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Impacts)
}

func (h *LookupHandler) respond(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]lookup.View, error)) {
	views, err := fetch(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
