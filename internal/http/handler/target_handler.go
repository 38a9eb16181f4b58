package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/service"
	"go.uber.org/zap"
)

type TargetHandler struct {
	targetService *service.TargetService
	logger        *zap.Logger
}

func NewTargetHandler(targetService *service.TargetService, logger *zap.Logger) *TargetHandler {
	return &TargetHandler{
		targetService: targetService,
		logger:        logger,
	}
}

// List godoc
// @Summary List income targets
// @Description Get all recorded income targets, most recent year first
// @Tags Targets
// @Accept json
// @Produce json
// @Success 200 {array} domain.IncomeTargetDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /targets [get]
func (h *TargetHandler) List(w http.ResponseWriter, r *http.Request) {
	targets, err := h.targetService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list targets", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list targets")
		return
	}
	respondJSON(w, http.StatusOK, targets)
}

// GetByYear godoc
// @Summary Get income target for a year
// @Tags Targets
// @Accept json
// @Produce json
// @Param year path int true "Target year"
// @Success 200 {object} domain.IncomeTargetDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /targets/{year} [get]
func (h *TargetHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	target, err := h.targetService.GetByYear(r.Context(), year)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "No target set for this year")
			return
		}
		h.logger.Error("failed to get target", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to get target")
		return
	}

	respondJSON(w, http.StatusOK, target)
}

// Upsert godoc
// @Summary Set income target for a year
// @Description Create or replace the quarterly and yearly income targets for a year. Requires admin access.
// @Tags Targets
// @Accept json
// @Produce json
// @Param year path int true "Target year"
// @Param request body domain.UpsertTargetRequest true "Target values"
// @Success 200 {object} domain.IncomeTargetDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /targets/{year} [put]
func (h *TargetHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req domain.UpsertTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	target, err := h.targetService.Upsert(r.Context(), year, &req)
	if err != nil {
		h.logger.Error("failed to upsert target", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to save target")
		return
	}

	respondJSON(w, http.StatusOK, target)
}

func parseYearParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, errors.New("year must be a number between 2000 and 2100")
	}
	return year, nil
}
