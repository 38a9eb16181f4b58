package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PIDSequenceRepository handles database operations for the per-year project
// code counter. Codes are assigned from this counter when a project is
// created without an explicit PID.
type PIDSequenceRepository struct {
	db *gorm.DB
}

// NewPIDSequenceRepository creates a new PIDSequenceRepository
func NewPIDSequenceRepository(db *gorm.DB) *PIDSequenceRepository {
	return &PIDSequenceRepository{db: db}
}

// GetNextNumber atomically retrieves and increments the sequence for a year.
// Uses SELECT FOR UPDATE so concurrent creations never share a code.
// If no sequence exists for the year, one is created starting at 1.
func (r *PIDSequenceRepository) GetNextNumber(ctx context.Context, year int) (int, error) {
	var seq domain.PIDSequence
	var nextSeq int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("year = ?", year).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.PIDSequence{
				Year:         year,
				LastSequence: 1,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create pid sequence: %w", err)
			}
			nextSeq = 1
		} else if result.Error != nil {
			return fmt.Errorf("failed to get pid sequence: %w", result.Error)
		} else {
			nextSeq = seq.LastSequence + 1
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_sequence": nextSeq,
				"updated_at":    time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update pid sequence: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return nextSeq, nil
}

// GetCurrentSequence retrieves the current sequence value without
// incrementing. Returns 0 if no sequence exists for the year.
func (r *PIDSequenceRepository) GetCurrentSequence(ctx context.Context, year int) (int, error) {
	var seq domain.PIDSequence
	err := r.db.WithContext(ctx).Where("year = ?", year).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get pid sequence: %w", err)
	}
	return seq.LastSequence, nil
}

// SetSequence raises the sequence to the given value. The value should be
// the LAST USED sequence number; the counter is never lowered, so a stale
// sync can't cause duplicate codes.
func (r *PIDSequenceRepository) SetSequence(ctx context.Context, year int, value int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq domain.PIDSequence
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("year = ?", year).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.PIDSequence{
				Year:         year,
				LastSequence: value,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create pid sequence: %w", err)
			}
			return nil
		}
		if result.Error != nil {
			return fmt.Errorf("failed to get pid sequence: %w", result.Error)
		}

		if value > seq.LastSequence {
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_sequence": value,
				"updated_at":    time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update pid sequence: %w", err)
			}
		}
		return nil
	})
}
