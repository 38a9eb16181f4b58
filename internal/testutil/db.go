// Package testutil provides helpers shared by repository and service tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory SQLite database and migrates the
// schema. Each call gets its own database, so tests can run in parallel.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	require.NoError(t, db.AutoMigrate(
		&domain.Project{},
		&domain.IncomeTarget{},
		&domain.PIDSequence{},
	))

	return db
}

// CreateTestProject inserts a project with sensible defaults, applying any
// mutators before the insert.
func CreateTestProject(t *testing.T, db *gorm.DB, pid string, mutate ...func(*domain.Project)) *domain.Project {
	t.Helper()

	project := &domain.Project{
		PID:             pid,
		BusinessPartner: "PT Mitra Abadi",
		EndUser:         "PT Pelanggan Jaya",
		Category:        domain.CategoryImplementation,
		Product:         "Core Banking",
		PIC:             "Andi",
		NettGP:          100,
		Quarter:         domain.QuarterQ1,
		Year:            2025,
	}
	for _, m := range mutate {
		m(project)
	}

	require.NoError(t, db.Create(project).Error)
	return project
}

// CreateTestTarget inserts an income target for a year.
func CreateTestTarget(t *testing.T, db *gorm.DB, year int, yearly int64) *domain.IncomeTarget {
	t.Helper()

	target := &domain.IncomeTarget{
		Year:         year,
		Q1Target:     yearly / 4,
		Q2Target:     yearly / 4,
		Q3Target:     yearly / 4,
		Q4Target:     yearly / 4,
		YearlyTarget: yearly,
	}
	require.NoError(t, db.Create(target).Error)
	return target
}
