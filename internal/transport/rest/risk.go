package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kirakulakov/risk-management/internal/config"
	"github.com/kirakulakov/risk-management/internal/service/risk"
)

// riskService defines the minimal interface needed by RiskHandler.
type riskService interface {
	CreateRisk(ctx context.Context, input risk.CreateRiskInput) (risk.RiskView, error)
	UpdateRisk(ctx context.Context, input risk.UpdateRiskInput) (risk.RiskView, error)
	GetRisk(ctx context.Context, riskID string) (risk.RiskView, error)
	ListRisks(ctx context.Context, input risk.ListRisksInput) (risk.ListRisksResult, error)
	DeleteRisk(ctx context.Context, input risk.DeleteRiskInput) error
	GetHistory(ctx context.Context, input risk.HistoryInput) (risk.HistoryResult, error)
	NextSequenceID(ctx context.Context) (string, error)
}

// RiskHandler serves the risk register endpoints.
type RiskHandler struct {
	svc        riskService
	pagination config.PaginationConfig
	log        *slog.Logger
}

// NewRiskHandler creates a RiskHandler.
func NewRiskHandler(svc riskService, pagination config.PaginationConfig, logger *slog.Logger) *RiskHandler {
	return &RiskHandler{
		svc:        svc,
		pagination: pagination,
		log:        logger.With("handler", "risk"),
	}
}

type createRiskRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Comment       *string `json:"comment"`
	FactorID      int64   `json:"factor_id"`
	TypeID        int64   `json:"type_id"`
	MethodID      int64   `json:"method_id"`
	ProbabilityID *int64  `json:"probability_id"`
	ImpactID      *int64  `json:"impact_id"`
}

type updateRiskRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Comment       *string `json:"comment"`
	FactorID      *int64  `json:"factor_id"`
	TypeID        *int64  `json:"type_id"`
	MethodID      *int64  `json:"method_id"`
	StatusID      *int64  `json:"status_id"`
	ProbabilityID *int64  `json:"probability_id"`
	ImpactID      *int64  `json:"impact_id"`
}

type listRisksResponse struct {
	Risks  []risk.RiskView `json:"risks"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type historyResponse struct {
	History []risk.HistoryEntryView `json:"history"`
	Total   int                     `json:"total"`
	Limit   int                     `json:"limit"`
	Offset  int                     `json:"offset"`
}

// List handles GET /api/risks.
func (h *RiskHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r, h.pagination)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ListRisks(r.Context(), risk.ListRisksInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listRisksResponse{
		Risks:  result.Risks,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

// Create handles POST /api/risks.
func (h *RiskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.CreateRisk(r.Context(), risk.CreateRiskInput{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Comment:       req.Comment,
		FactorID:      req.FactorID,
		TypeID:        req.TypeID,
		MethodID:      req.MethodID,
		ProbabilityID: req.ProbabilityID,
		ImpactID:      req.ImpactID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// Update handles PATCH /api/risks.
func (h *RiskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.UpdateRisk(r.Context(), risk.UpdateRiskInput{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Comment:       req.Comment,
		FactorID:      req.FactorID,
		TypeID:        req.TypeID,
		MethodID:      req.MethodID,
		StatusID:      req.StatusID,
		ProbabilityID: req.ProbabilityID,
		ImpactID:      req.ImpactID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Get handles GET /api/risks/{id}.
func (h *RiskHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetRisk(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/risks/{id}.
func (h *RiskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteRisk(r.Context(), risk.DeleteRiskInput{ID: r.PathValue("id")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewID handles GET /api/risks/new-id.
func (h *RiskHandler) NewID(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.NextSequenceID(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// History handles GET /api/risks/{id}/history.
func (h *RiskHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r, h.pagination)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.GetHistory(r.Context(), risk.HistoryInput{
		RiskID: r.PathValue("id"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		History: result.Entries,
		Total:   result.Total,
		Limit:   result.Limit,
		Offset:  result.Offset,
	})
}
