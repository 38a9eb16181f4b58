package service

import (
	"context"
	"fmt"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/mapper"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"go.uber.org/zap"
)

type TargetService struct {
	targetRepo *repository.TargetRepository
	logger     *zap.Logger
}

func NewTargetService(targetRepo *repository.TargetRepository, logger *zap.Logger) *TargetService {
	return &TargetService{
		targetRepo: targetRepo,
		logger:     logger,
	}
}

// GetByYear returns the target for a year. ErrNotFound when none is set.
func (s *TargetService) GetByYear(ctx context.Context, year int) (*domain.IncomeTargetDTO, error) {
	target, err := s.targetRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get target: %w", err)
	}
	if target == nil {
		return nil, ErrNotFound
	}
	dto := mapper.ToIncomeTargetDTO(target)
	return &dto, nil
}

// Upsert creates or replaces the target for a year
func (s *TargetService) Upsert(ctx context.Context, year int, req *domain.UpsertTargetRequest) (*domain.IncomeTargetDTO, error) {
	target := &domain.IncomeTarget{
		Year:         year,
		Q1Target:     req.Q1Target,
		Q2Target:     req.Q2Target,
		Q3Target:     req.Q3Target,
		Q4Target:     req.Q4Target,
		YearlyTarget: req.YearlyTarget,
	}

	if err := s.targetRepo.Upsert(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to upsert target: %w", err)
	}

	s.logger.Info("income target saved",
		zap.Int("year", year),
		zap.Int64("yearly_target", target.YearlyTarget))

	dto := mapper.ToIncomeTargetDTO(target)
	return &dto, nil
}

// List returns all recorded targets, most recent year first
func (s *TargetService) List(ctx context.Context) ([]domain.IncomeTargetDTO, error) {
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	dtos := make([]domain.IncomeTargetDTO, len(targets))
	for i := range targets {
		dtos[i] = mapper.ToIncomeTargetDTO(&targets[i])
	}
	return dtos, nil
}
