package service

import (
	"context"
	"fmt"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"go.uber.org/zap"
)

// PIDService assigns unique project codes. Codes follow the format
// P<2-digit year><4-digit sequence>, e.g. P250007, with one counter per
// year.
type PIDService struct {
	repo        *repository.PIDSequenceRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

// NewPIDService creates a new PIDService
func NewPIDService(
	repo *repository.PIDSequenceRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *PIDService {
	return &PIDService{
		repo:        repo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// NextPID generates the next unassigned project code for a year.
// The sequence increment is atomic, so concurrent creations never collide.
func (s *PIDService) NextPID(ctx context.Context, year int) (string, error) {
	nextSeq, err := s.repo.GetNextNumber(ctx, year)
	if err != nil {
		s.logger.Error("failed to get next pid sequence",
			zap.Int("year", year),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate project code: %w", err)
	}

	pid := domain.FormatPID(year, nextSeq)

	s.logger.Info("generated project code",
		zap.String("pid", pid),
		zap.Int("year", year),
		zap.Int("sequence", nextSeq))

	return pid, nil
}

// SyncSequence realigns the counter for a year with the highest sequence
// actually present among stored PIDs. Bulk imports may carry explicit codes
// ahead of the counter; this keeps later generated codes unique. The counter
// is only ever raised.
func (s *PIDService) SyncSequence(ctx context.Context, year int) error {
	maxSeq, err := s.projectRepo.MaxPIDSequence(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to scan project codes: %w", err)
	}
	if maxSeq == 0 {
		return nil
	}

	current, err := s.repo.GetCurrentSequence(ctx, year)
	if err != nil {
		return err
	}
	if maxSeq <= current {
		return nil
	}

	if err := s.repo.SetSequence(ctx, year, maxSeq); err != nil {
		return fmt.Errorf("failed to sync pid sequence: %w", err)
	}

	s.logger.Info("pid sequence synced",
		zap.Int("year", year),
		zap.Int("from", current),
		zap.Int("to", maxSeq))
	return nil
}
