package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/mapper"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	pidService  *PIDService
	logger      *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	pidService *PIDService,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		pidService:  pidService,
		logger:      logger,
	}
}

// Create registers a new project. When the request carries no PID the next
// code for the project's year is assigned; an explicit PID is honored but
// must be unused.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	pid := req.PID
	if pid == "" {
		generated, err := s.pidService.NextPID(ctx, req.Year)
		if err != nil {
			return nil, err
		}
		pid = generated
	} else {
		exists, err := s.projectRepo.PIDExists(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("failed to check project code: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePID, pid)
		}
	}

	project := &domain.Project{
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
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("pid", project.PID),
		zap.String("pic", project.PIC),
		zap.Int64("nett_gp", project.NettGP))

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Update applies the non-nil fields of the request and refreshes the
// updated timestamp.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.BusinessPartner != nil {
		project.BusinessPartner = *req.BusinessPartner
	}
	if req.EndUser != nil {
		project.EndUser = *req.EndUser
	}
	if req.Category != nil {
		project.Category = domain.ProjectCategory(*req.Category)
	}
	if req.Product != nil {
		project.Product = *req.Product
	}
	if req.PIC != nil {
		project.PIC = *req.PIC
	}
	if req.NettGP != nil {
		project.NettGP = *req.NettGP
	}
	if req.Quarter != nil {
		project.Quarter = domain.Quarter(*req.Quarter)
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.Keterangan != nil {
		project.Keterangan = *req.Keterangan
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

func (s *ProjectService) List(ctx context.Context, page, pageSize int, filters *repository.ProjectFilters, sortBy repository.ProjectSortOption) (*domain.PaginatedResponse, error) {
	projects, total, err := s.projectRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &domain.PaginatedResponse{
		Data:       mapper.ToProjectDTOs(projects),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}
