package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kirakulakov/risk-management/internal/service/account"
)

// accountService defines the minimal interface needed by AccountHandler.
type accountService interface {
	GetProfile(ctx context.Context) (account.AccountView, error)
	UpdateProfile(ctx context.Context, input account.UpdateAccountInput) (account.AccountView, error)
	ChangePassword(ctx context.Context, input account.ChangePasswordInput) error
}

// AccountHandler serves the authenticated account's profile endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type updateAccountRequest struct {
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	ProjectName *string `json:"project_name"`
	ProjectID   *string `json:"project_id"`
	Description *string `json:"description"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Get handles GET /api/account.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Update handles PATCH /api/account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.UpdateProfile(r.Context(), account.UpdateAccountInput{
		Email:       req.Email,
		Name:        req.Name,
		ProjectName: req.ProjectName,
		ProjectID:   req.ProjectID,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ChangePassword handles PATCH /api/account/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), account.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
