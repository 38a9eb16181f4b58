package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/http/handler"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/service"
	"github.com/mitrasinergi/sales-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProjectRouter(t *testing.T) http.Handler {
	db := testutil.SetupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	pidRepo := repository.NewPIDSequenceRepository(db)
	pidService := service.NewPIDService(pidRepo, projectRepo, zap.NewNop())
	projectService := service.NewProjectService(projectRepo, pidService, zap.NewNop())
	importCfg := &config.ImportConfig{HeaderRows: 1, MaxRows: 100, MaxUploadSizeMB: 10}
	importService := service.NewImportService(projectRepo, pidService, importCfg, zap.NewNop())
	exportService := service.NewExportService(projectRepo, zap.NewNop())

	h := handler.NewProjectHandler(projectService, importService, exportService, importCfg, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/export", h.Export)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProjectHandler_CreateAndGet(t *testing.T) {
	router := newProjectRouter(t)

	rec := postJSON(t, router, "/projects", map[string]interface{}{
		"businessPartner": "PT Mitra Abadi",
		"endUser":         "PT Pelanggan Jaya",
		"category":        "Implementation",
		"product":         "Core Banking",
		"pic":             "Andi",
		"nettGp":          500,
		"quarter":         "Q1",
		"year":            2025,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.ProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "P250001", created.PID)
	assert.Contains(t, rec.Header().Get("Location"), created.ID.String())

	getReq := httptest.NewRequest(http.MethodGet, "/projects/"+created.ID.String(), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	assert.Equal(t, http.StatusOK, getRec.Code)
}

func TestProjectHandler_CreateValidation(t *testing.T) {
	router := newProjectRouter(t)

	rec := postJSON(t, router, "/projects", map[string]interface{}{
		"businessPartner": "PT Mitra Abadi",
		"endUser":         "PT Pelanggan Jaya",
		"category":        "Support",
		"pic":             "Andi",
		"nettGp":          -5,
		"quarter":         "Q7",
		"year":            1990,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "category")
	assert.Contains(t, apiErr.Errors, "nettGp")
	assert.Contains(t, apiErr.Errors, "quarter")
	assert.Contains(t, apiErr.Errors, "year")
}

func TestProjectHandler_DuplicatePIDConflict(t *testing.T) {
	router := newProjectRouter(t)

	body := map[string]interface{}{
		"pid":             "P250042",
		"businessPartner": "PT Mitra Abadi",
		"endUser":         "PT Pelanggan Jaya",
		"category":        "Maintenance",
		"pic":             "Budi",
		"nettGp":          100,
		"quarter":         "Q2",
		"year":            2025,
	}
	rec := postJSON(t, router, "/projects", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/projects", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProjectHandler_GetInvalidID(t *testing.T) {
	router := newProjectRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_ExportCSV(t *testing.T) {
	router := newProjectRouter(t)

	rec := postJSON(t, router, "/projects", map[string]interface{}{
		"businessPartner": "PT Mitra Abadi",
		"endUser":         "PT Pelanggan Jaya",
		"category":        "LSC",
		"pic":             "Citra",
		"nettGp":          300,
		"quarter":         "Q4",
		"year":            2025,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/projects/export?format=csv&year=2025", nil)
	exportRec := httptest.NewRecorder()
	router.ServeHTTP(exportRec, req)

	assert.Equal(t, http.StatusOK, exportRec.Code)
	assert.Equal(t, "text/csv", exportRec.Header().Get("Content-Type"))
	assert.Contains(t, exportRec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, exportRec.Body.String(), "P250001")
}
