package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportFormat selects the file format of an export download.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch raw {
	case "", string(ExportFormatCSV):
		return ExportFormatCSV, nil
	case string(ExportFormatXLSX):
		return ExportFormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, raw)
	}
}

// ExportService streams the filtered project set as a delimited file. The
// column layout mirrors the import sheet so an export round-trips through
// the importer.
type ExportService struct {
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewExportService(projectRepo *repository.ProjectRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Export writes all projects matching the filters to w in the given format
// and returns the number of exported rows.
func (s *ExportService) Export(ctx context.Context, w io.Writer, filters *repository.ProjectFilters, format ExportFormat) (int, error) {
	projects, err := s.projectRepo.ListFiltered(ctx, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch projects: %w", err)
	}

	switch format {
	case ExportFormatCSV:
		err = writeCSV(w, projects)
	case ExportFormatXLSX:
		err = writeXLSX(w, projects)
	default:
		return 0, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}
	if err != nil {
		return 0, err
	}

	s.logger.Info("projects exported",
		zap.Int("rows", len(projects)),
		zap.String("format", string(format)))
	return len(projects), nil
}

func exportRow(p *domain.Project) []string {
	return []string{
		p.PID,
		p.BusinessPartner,
		p.EndUser,
		string(p.Category),
		p.Product,
		p.PIC,
		strconv.FormatInt(p.NettGP, 10),
		string(p.Quarter),
		strconv.Itoa(p.Year),
		p.Keterangan,
	}
}

func writeCSV(w io.Writer, projects []domain.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ImportColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range projects {
		if err := cw.Write(exportRow(&projects[i])); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, projects []domain.Project) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range ImportColumns {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, name); err != nil {
			return err
		}
	}

	for i := range projects {
		row := exportRow(&projects[i])
		for col, value := range row {
			cellRef, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			// Keep nett gp and year numeric so spreadsheet formulas work
			// on the exported file.
			switch col {
			case 6:
				if err := f.SetCellValue(sheet, cellRef, projects[i].NettGP); err != nil {
					return err
				}
			case 8:
				if err := f.SetCellValue(sheet, cellRef, projects[i].Year); err != nil {
					return err
				}
			default:
				if err := f.SetCellValue(sheet, cellRef, value); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}
