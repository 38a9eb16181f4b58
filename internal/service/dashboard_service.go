package service

import (
	"context"
	"fmt"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/stats"
	"go.uber.org/zap"
)

// DashboardService resolves the per-year data snapshot and hands it to the
// pure aggregation engine in internal/stats. The engine keeps no state, so
// concurrent requests for different years need no coordination.
type DashboardService struct {
	projectRepo *repository.ProjectRepository
	targetRepo  *repository.TargetRepository
	logger      *zap.Logger
}

func NewDashboardService(
	projectRepo *repository.ProjectRepository,
	targetRepo *repository.TargetRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		projectRepo: projectRepo,
		targetRepo:  targetRepo,
		logger:      logger,
	}
}

// GetStats computes the dashboard overview for one year
func (s *DashboardService) GetStats(ctx context.Context, year int) (*domain.DashboardStats, error) {
	projects, err := s.projectRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	target, err := s.targetRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch target: %w", err)
	}

	result := stats.ComputeDashboardStats(projects, target)
	result.Year = year

	s.logger.Debug("dashboard stats computed",
		zap.Int("year", year),
		zap.Int("projects", len(projects)),
		zap.Int64("total_income", result.TotalIncome))

	return &result, nil
}

// GetPICRanking returns the top-limit leaderboard by person-in-charge
func (s *DashboardService) GetPICRanking(ctx context.Context, year, limit int) ([]domain.PICRanking, error) {
	projects, err := s.projectRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return stats.RankByPIC(projects, limit), nil
}

// GetProductRanking returns the top-limit leaderboard by product, each entry
// carrying its per-PIC contribution breakdown
func (s *DashboardService) GetProductRanking(ctx context.Context, year, limit int) ([]domain.ProductRanking, error) {
	projects, err := s.projectRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return stats.RankByProduct(projects, limit), nil
}
