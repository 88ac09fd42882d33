package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kirakulakov/risk-management/internal/service/account"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input account.SignUpInput) (*account.AuthResult, error)
	SignIn(ctx context.Context, input account.SignInInput) (*account.AuthResult, error)
}

// AuthHandler serves registration and sign-in endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signUpRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Name        string  `json:"name"`
	ProjectName string  `json:"project_name"`
	ProjectID   string  `json:"project_id"`
	Description *string `json:"description"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string              `json:"access_token"`
	Account     account.AccountView `json:"account"`
}

// SignUp handles POST /api/auth/sign-up.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SignUp(r.Context(), account.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		ProjectName: req.ProjectName,
		ProjectID:   req.ProjectID,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		AccessToken: result.AccessToken,
		Account:     result.Account,
	})
}

// SignIn handles POST /api/auth/sign-in.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SignIn(r.Context(), account.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		Account:     result.Account,
	})
}
