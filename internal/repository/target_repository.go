package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"gorm.io/gorm"
)

type TargetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// GetByYear returns the target for a year, or nil when none is recorded.
// An absent target is a normal state, not an error.
func (r *TargetRepository) GetByYear(ctx context.Context, year int) (*domain.IncomeTarget, error) {
	var target domain.IncomeTarget
	err := r.db.WithContext(ctx).Where("year = ?", year).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Upsert creates or replaces the target for a year. The updated timestamp is
// refreshed on every write.
func (r *TargetRepository) Upsert(ctx context.Context, target *domain.IncomeTarget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.IncomeTarget
		err := tx.Where("year = ?", target.Year).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(target).Error
		}
		if err != nil {
			return err
		}

		existing.Q1Target = target.Q1Target
		existing.Q2Target = target.Q2Target
		existing.Q3Target = target.Q3Target
		existing.Q4Target = target.Q4Target
		existing.YearlyTarget = target.YearlyTarget
		existing.UpdatedAt = time.Now().UTC()
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*target = existing
		return nil
	})
}

// List returns all recorded targets, most recent year first
func (r *TargetRepository) List(ctx context.Context) ([]domain.IncomeTarget, error) {
	var targets []domain.IncomeTarget
	err := r.db.WithContext(ctx).Order("year DESC").Find(&targets).Error
	return targets, err
}
