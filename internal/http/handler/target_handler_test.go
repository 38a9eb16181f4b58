package handler_test

import (
	"bytes"
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
)

func newTargetRouter(t *testing.T) http.Handler {
	db := testutil.SetupTestDB(t)
	targetService := service.NewTargetService(repository.NewTargetRepository(db), zap.NewNop())
	h := handler.NewTargetHandler(targetService, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/targets", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{year}", h.GetByYear)
		r.Put("/{year}", h.Upsert)
	})
	return r
}

func putJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTargetHandler_UpsertAndGet(t *testing.T) {
	router := newTargetRouter(t)

	rec := putJSON(t, router, "/targets/2025", map[string]interface{}{
		"q1Target":     100,
		"q2Target":     200,
		"q3Target":     300,
		"q4Target":     400,
		"yearlyTarget": 1000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	getReq := httptest.NewRequest(http.MethodGet, "/targets/2025", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	var dto domain.IncomeTargetDTO
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &dto))
	assert.Equal(t, 2025, dto.Year)
	assert.Equal(t, int64(1000), dto.YearlyTarget)
	assert.Equal(t, int64(400), dto.Q4Target)
}

func TestTargetHandler_GetMissingYear(t *testing.T) {
	router := newTargetRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/targets/2031", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTargetHandler_InvalidYearParam(t *testing.T) {
	router := newTargetRouter(t)

	for _, path := range []string{"/targets/abc", "/targets/1999", "/targets/2101"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestTargetHandler_UpsertValidation(t *testing.T) {
	router := newTargetRouter(t)

	rec := putJSON(t, router, "/targets/2025", map[string]interface{}{
		"q1Target":     -5,
		"yearlyTarget": 0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
}
