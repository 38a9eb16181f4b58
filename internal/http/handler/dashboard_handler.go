package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mitrasinergi/sales-api/internal/service"
	"github.com/mitrasinergi/sales-api/internal/stats"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	insightService   *service.InsightService
	logger           *zap.Logger
}

func NewDashboardHandler(
	dashboardService *service.DashboardService,
	insightService *service.InsightService,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		insightService:   insightService,
		logger:           logger,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Get total income, target achievement, gap and the quarterly and category breakdowns for a year
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param year query int false "Year (defaults to current year)"
// @Success 200 {object} domain.DashboardStats
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.dashboardService.GetStats(r.Context(), year)
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard statistics")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// PICRanking godoc
// @Summary Ranking by person in charge
// @Description Get the top persons in charge by total income for a year
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param year query int false "Year (defaults to current year)"
// @Param limit query int false "Maximum entries" default(5)
// @Success 200 {array} domain.PICRanking
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/rankings/pic [get]
func (h *DashboardHandler) PICRanking(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimitQuery(r)

	result, err := h.dashboardService.GetPICRanking(r.Context(), year, limit)
	if err != nil {
		h.logger.Error("failed to compute pic ranking", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute ranking")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ProductRanking godoc
// @Summary Ranking by product
// @Description Get the top products by total income for a year, each with its per-PIC contribution breakdown
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param year query int false "Year (defaults to current year)"
// @Param limit query int false "Maximum entries" default(5)
// @Success 200 {array} domain.ProductRanking
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/rankings/product [get]
func (h *DashboardHandler) ProductRanking(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimitQuery(r)

	result, err := h.dashboardService.GetProductRanking(r.Context(), year, limit)
	if err != nil {
		h.logger.Error("failed to compute product ranking", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute ranking")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Insight godoc
// @Summary Dashboard commentary
// @Description Get the year's statistics with narrative commentary. Falls back to a locally generated summary when the analysis service is unavailable.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param year query int false "Year (defaults to current year)"
// @Success 200 {object} domain.InsightResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/insight [get]
func (h *DashboardHandler) Insight(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.insightService.GetInsight(r.Context(), year)
	if err != nil {
		h.logger.Error("failed to build insight", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to build insight")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func parseYearQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().UTC().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, errors.New("year must be a number between 2000 and 2100")
	}
	return year, nil
}

func parseLimitQuery(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		return stats.DefaultRankingLimit
	}
	return limit
}
