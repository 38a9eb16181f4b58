package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/service"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	importService  *service.ImportService
	exportService  *service.ExportService
	importCfg      *config.ImportConfig
	logger         *zap.Logger
}

func NewProjectHandler(
	projectService *service.ProjectService,
	importService *service.ImportService,
	exportService *service.ExportService,
	importCfg *config.ImportConfig,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		importService:  importService,
		exportService:  exportService,
		importCfg:      importCfg,
		logger:         logger,
	}
}

// List godoc
// @Summary List projects
// @Description Get paginated list of project records with optional filters
// @Tags Projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param year query int false "Filter by year"
// @Param quarter query string false "Filter by quarter" Enums(Q1, Q2, Q3, Q4)
// @Param category query string false "Filter by category" Enums(Implementation, Maintenance, LSC)
// @Param pic query string false "Filter by person in charge"
// @Param q query string false "Search in PID, business partner, end user and product"
// @Param sortBy query string false "Sort option" Enums(created_desc, created_asc, nett_gp_desc, nett_gp_asc, pid_asc, pid_desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProjectDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	filters, err := parseProjectFilters(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	sortBy := repository.ProjectSortByCreatedDesc
	if s := r.URL.Query().Get("sortBy"); s != "" {
		sortBy = repository.ProjectSortOption(s)
	}

	result, err := h.projectService.List(r.Context(), page, pageSize, filters, sortBy)
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create project record
// @Description Create a new project record. A blank pid is assigned the next code for the record's year.
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body domain.CreateProjectRequest true "Project data"
// @Success 201 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+project.ID.String())
	respondJSON(w, http.StatusCreated, project)
}

// GetByID godoc
// @Summary Get project record
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Update godoc
// @Summary Update project record
// @Description Apply a partial update. Only the fields present in the body are changed.
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	var req domain.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete project record
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		h.handleProjectError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import godoc
// @Summary Import project records from XLSX
// @Description Upload an XLSX file. The batch is all-or-nothing: any invalid row rejects the whole file and the response lists every row error.
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects/import [post]
func (h *ProjectHandler) Import(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.importCfg.MaxUploadSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Upload exceeds the %d MB limit", h.importCfg.MaxUploadSizeMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file upload field 'file'")
		return
	}
	defer file.Close()

	h.logger.Info("import upload received",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size))

	result, err := h.importService.Import(r.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("import failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to import file")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Export godoc
// @Summary Export project records
// @Description Download the filtered project set as CSV or XLSX. The column layout matches the import sheet.
// @Tags Projects
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Param year query int false "Filter by year"
// @Param quarter query string false "Filter by quarter" Enums(Q1, Q2, Q3, Q4)
// @Param category query string false "Filter by category" Enums(Implementation, Maintenance, LSC)
// @Param pic query string false "Filter by person in charge"
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /projects/export [get]
func (h *ProjectHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filters, err := parseProjectFilters(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename := fmt.Sprintf("projects_%s.%s", time.Now().UTC().Format("20060102"), format)
	switch format {
	case service.ExportFormatCSV:
		w.Header().Set("Content-Type", "text/csv")
	case service.ExportFormatXLSX:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	rows, err := h.exportService.Export(r.Context(), w, filters, format)
	if err != nil {
		// Headers may already be sent, so only log at this point
		h.logger.Error("export failed", zap.Error(err))
		return
	}

	h.logger.Info("export completed",
		zap.String("filename", filename),
		zap.Int("rows", rows))
}

func parseProjectFilters(r *http.Request) (*repository.ProjectFilters, error) {
	filters := &repository.ProjectFilters{}

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("invalid year filter %q", y)
		}
		filters.Year = &year
	}
	if q := r.URL.Query().Get("quarter"); q != "" {
		quarter := domain.Quarter(q)
		if !quarter.IsValid() {
			return nil, fmt.Errorf("invalid quarter filter %q", q)
		}
		filters.Quarter = &quarter
	}
	if c := r.URL.Query().Get("category"); c != "" {
		category := domain.ProjectCategory(c)
		if !category.IsValid() {
			return nil, fmt.Errorf("invalid category filter %q", c)
		}
		filters.Category = &category
	}
	if p := r.URL.Query().Get("pic"); p != "" {
		filters.PIC = &p
	}
	if s := r.URL.Query().Get("q"); s != "" {
		filters.SearchQuery = &s
	}

	return filters, nil
}

func (h *ProjectHandler) handleProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrDuplicatePID):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("project operation failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
