package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ImportColumns is the expected column order of the upload sheet.
var ImportColumns = []string{
	"PID", "Business Partner", "End User", "Category", "Product",
	"PIC", "Nett GP", "Quarter", "Year", "Keterangan",
}

// ImportService parses a tabular XLSX upload into project records. Every
// row is validated independently and errors are collected per row; a batch
// with any invalid row is rejected whole. Partial import is not permitted.
type ImportService struct {
	projectRepo *repository.ProjectRepository
	pidService  *PIDService
	cfg         *config.ImportConfig
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewImportService(
	projectRepo *repository.ProjectRepository,
	pidService *PIDService,
	cfg *config.ImportConfig,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		projectRepo: projectRepo,
		pidService:  pidService,
		cfg:         cfg,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Import reads the first sheet of an XLSX file and imports its rows.
// Reported row numbers are 1-based and offset by the configured header row
// count, so they match what the user sees in their spreadsheet.
func (s *ImportService) Import(ctx context.Context, file io.Reader) (*domain.ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid XLSX file", ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	if len(rows) <= s.cfg.HeaderRows {
		return nil, fmt.Errorf("%w: file contains no data rows", ErrInvalidInput)
	}

	dataRows := rows[s.cfg.HeaderRows:]
	if s.cfg.MaxRows > 0 && len(dataRows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w: too many rows (%d, max %d)", ErrInvalidInput, len(dataRows), s.cfg.MaxRows)
	}

	var requests []domain.CreateProjectRequest
	var rowErrors []string
	seenPIDs := make(map[string]int)

	for i, row := range dataRows {
		rowNum := i + s.cfg.HeaderRows + 1

		if isBlankRow(row) {
			continue
		}

		req, err := parseImportRow(row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if err := s.validate.Struct(req); err != nil {
			for _, msg := range describeRowErrors(err) {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %s", rowNum, msg))
			}
			continue
		}

		if req.PID != "" {
			if firstRow, dup := seenPIDs[req.PID]; dup {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: duplicate PID %s (first used on row %d)", rowNum, req.PID, firstRow))
				continue
			}
			seenPIDs[req.PID] = rowNum

			exists, err := s.projectRepo.PIDExists(ctx, req.PID)
			if err != nil {
				return nil, fmt.Errorf("failed to check project code: %w", err)
			}
			if exists {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: PID %s already exists", rowNum, req.PID))
				continue
			}
		}

		requests = append(requests, req)
	}

	if len(rowErrors) > 0 {
		s.logger.Warn("import batch rejected",
			zap.Int("rows", len(dataRows)),
			zap.Int("errors", len(rowErrors)))
		return &domain.ImportResult{Rejected: true, Errors: rowErrors}, nil
	}

	projects := make([]domain.Project, 0, len(requests))
	for _, req := range requests {
		pid := req.PID
		if pid == "" {
			pid, err = s.pidService.NextPID(ctx, req.Year)
			if err != nil {
				return nil, err
			}
		}
		projects = append(projects, domain.Project{
			PID:             pid,
			BusinessPartner: req.BusinessPartner,
			EndUser:         req.EndUser,
			Category:        domain.ProjectCategory(req.Category),
			Product:         req.Product,
			PIC:             req.PIC,
			NettGP:          req.NettGP,
			Quarter:         domain.Quarter(req.Quarter),
			Year:            req.Year,
			Keterangan:      req.Keterangan,
		})
	}

	if err := s.projectRepo.CreateBatch(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to import batch: %w", err)
	}

	s.logger.Info("import batch committed", zap.Int("imported", len(projects)))
	return &domain.ImportResult{Imported: len(projects)}, nil
}

// parseImportRow maps one sheet row onto a create request. Cell-level type
// problems are reported here; field constraints are left to the validator.
func parseImportRow(row []string) (domain.CreateProjectRequest, error) {
	var req domain.CreateProjectRequest

	req.PID = strings.TrimSpace(cell(row, 0))
	req.BusinessPartner = strings.TrimSpace(cell(row, 1))
	req.EndUser = strings.TrimSpace(cell(row, 2))
	req.Category = strings.TrimSpace(cell(row, 3))
	req.Product = strings.TrimSpace(cell(row, 4))
	req.PIC = strings.TrimSpace(cell(row, 5))

	rawGP := strings.TrimSpace(cell(row, 6))
	if rawGP == "" {
		return req, fmt.Errorf("nett gp is required")
	}
	nettGP, err := strconv.ParseInt(strings.ReplaceAll(rawGP, ",", ""), 10, 64)
	if err != nil {
		return req, fmt.Errorf("nett gp must be a whole number, got %q", rawGP)
	}
	req.NettGP = nettGP

	req.Quarter = strings.ToUpper(strings.TrimSpace(cell(row, 7)))

	rawYear := strings.TrimSpace(cell(row, 8))
	if rawYear == "" {
		return req, fmt.Errorf("year is required")
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return req, fmt.Errorf("year must be a number, got %q", rawYear)
	}
	req.Year = year

	req.Keterangan = strings.TrimSpace(cell(row, 9))
	return req, nil
}

// describeRowErrors flattens validator errors into per-field messages
func describeRowErrors(err error) []string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldLabel(fe.Field())))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fieldLabel(fe.Field()), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fieldLabel(fe.Field()), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fieldLabel(fe.Field()), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fieldLabel(fe.Field()), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s exceeds %s characters", fieldLabel(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: %s", fieldLabel(fe.Field()), domain.GetValidationMessage(fe.Tag())))
		}
	}
	return msgs
}

var fieldLabels = map[string]string{
	"PID":             "pid",
	"BusinessPartner": "business partner",
	"EndUser":         "end user",
	"Category":        "category",
	"Product":         "product",
	"PIC":             "pic",
	"NettGP":          "nett gp",
	"Quarter":         "quarter",
	"Year":            "year",
	"Keterangan":      "keterangan",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return strings.ToLower(field)
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
