package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/http/handler"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/service"
	"github.com/mitrasinergi/sales-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newDashboardRouter(t *testing.T) (http.Handler, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	dashboardService := service.NewDashboardService(
		repository.NewProjectRepository(db),
		repository.NewTargetRepository(db),
		zap.NewNop(),
	)
	insightService := service.NewInsightService(dashboardService, nil, zap.NewNop())
	h := handler.NewDashboardHandler(dashboardService, insightService, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/dashboard/stats", h.Stats)
	r.Get("/dashboard/rankings/pic", h.PICRanking)
	r.Get("/dashboard/rankings/product", h.ProductRanking)
	r.Get("/dashboard/insight", h.Insight)
	return r, db
}

func TestDashboardHandler_Stats(t *testing.T) {
	router, db := newDashboardRouter(t)

	testutil.CreateTestTarget(t, db, 2025, 200)
	testutil.CreateTestProject(t, db, "P250001", func(p *domain.Project) { p.NettGP = 300 })

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats?year=2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(300), stats.TotalIncome)
	assert.InDelta(t, 150.0, stats.AchievementPercent, 0.0001)
	assert.Equal(t, int64(-100), stats.Gap)
	assert.Len(t, stats.QuarterlyBreakdown, 4)
}

func TestDashboardHandler_StatsInvalidYear(t *testing.T) {
	router, _ := newDashboardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats?year=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/dashboard/stats?year=1999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandler_PICRankingLimit(t *testing.T) {
	router, db := newDashboardRouter(t)

	for i, pic := range []string{"Andi", "Budi", "Citra"} {
		testutil.CreateTestProject(t, db, domain.FormatPID(2025, i+1), func(p *domain.Project) {
			p.PIC = pic
			p.NettGP = int64((i + 1) * 100)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/rankings/pic?year=2025&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rankings []domain.PICRanking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rankings))
	require.Len(t, rankings, 2)
	assert.Equal(t, "Citra", rankings[0].PIC)
	assert.Equal(t, "Budi", rankings[1].PIC)
}

func TestDashboardHandler_Insight(t *testing.T) {
	router, db := newDashboardRouter(t)

	testutil.CreateTestProject(t, db, "P250001", func(p *domain.Project) { p.NettGP = 500 })

	req := httptest.NewRequest(http.MethodGet, "/dashboard/insight?year=2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Generated)
	assert.NotEmpty(t, resp.Commentary)
	assert.Equal(t, int64(500), resp.Stats.TotalIncome)
}
