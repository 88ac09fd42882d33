package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kirakulakov/risk-management/internal/config"
	"github.com/kirakulakov/risk-management/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors onto HTTP statuses. Anything not
// recognized is a 500 and gets logged with its cause.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parsePage reads limit and offset query parameters. "skip" is accepted
// as an alias for offset. Limits above the configured maximum are
// clamped rather than rejected.
func parsePage(r *http.Request, cfg config.PaginationConfig) (limit, offset int, err error) {
	q := r.URL.Query()

	limit = cfg.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.NewValidationError("limit", "must be an integer")
		}
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	rawOffset := q.Get("offset")
	if rawOffset == "" {
		rawOffset = q.Get("skip")
	}
	if rawOffset != "" {
		offset, err = strconv.Atoi(rawOffset)
		if err != nil {
			return 0, 0, domain.NewValidationError("offset", "must be an integer")
		}
	}

	return limit, offset, nil
}
