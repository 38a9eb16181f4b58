package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the common identity and timestamp columns.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a UUID when none was set. Keeps the models portable
// between PostgreSQL and the in-memory SQLite used in tests.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ProjectCategory classifies the type of work a project covers
type ProjectCategory string

const (
	CategoryImplementation ProjectCategory = "Implementation"
	CategoryMaintenance    ProjectCategory = "Maintenance"
	CategoryLSC            ProjectCategory = "LSC"
)

// IsValid reports whether the category is one of the known values
func (c ProjectCategory) IsValid() bool {
	switch c {
	case CategoryImplementation, CategoryMaintenance, CategoryLSC:
		return true
	}
	return false
}

// Quarter identifies the fiscal quarter a project's income lands in
type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Quarters lists the four quarters in fixed reporting order
var Quarters = [4]Quarter{QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4}

// IsValid reports whether the quarter is one of Q1..Q4
func (q Quarter) IsValid() bool {
	switch q {
	case QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4:
		return true
	}
	return false
}

// ProductNA is the grouping sentinel for projects without a product.
const ProductNA = "N/A"

// Project is a recorded deal. NettGP is the net gross profit in whole
// Indonesian Rupiah; there is no fractional unit.
type Project struct {
	BaseModel
	PID             string          `gorm:"type:varchar(20);not null;uniqueIndex;column:pid"`
	BusinessPartner string          `gorm:"type:varchar(200);not null;column:business_partner"`
	EndUser         string          `gorm:"type:varchar(200);not null;column:end_user"`
	Category        ProjectCategory `gorm:"type:varchar(50);not null;index"`
	Product         string          `gorm:"type:varchar(200)"`
	PIC             string          `gorm:"type:varchar(100);not null;column:pic;index"`
	NettGP          int64           `gorm:"not null;column:nett_gp"`
	Quarter         Quarter         `gorm:"type:varchar(2);not null;index"`
	Year            int             `gorm:"not null;index"`
	Keterangan      string          `gorm:"type:text"`
}

// ProductOrNA returns the product name, or the N/A sentinel when blank.
func (p *Project) ProductOrNA() string {
	if p.Product == "" {
		return ProductNA
	}
	return p.Product
}

// IncomeTarget holds the quarterly and yearly income targets for one year.
// Year is the unique business key.
type IncomeTarget struct {
	BaseModel
	Year         int   `gorm:"not null;uniqueIndex"`
	Q1Target     int64 `gorm:"not null;default:0;column:q1_target"`
	Q2Target     int64 `gorm:"not null;default:0;column:q2_target"`
	Q3Target     int64 `gorm:"not null;default:0;column:q3_target"`
	Q4Target     int64 `gorm:"not null;default:0;column:q4_target"`
	YearlyTarget int64 `gorm:"not null;column:yearly_target"`
}

// QuarterTarget returns the target amount for the given quarter.
func (t *IncomeTarget) QuarterTarget(q Quarter) int64 {
	switch q {
	case QuarterQ1:
		return t.Q1Target
	case QuarterQ2:
		return t.Q2Target
	case QuarterQ3:
		return t.Q3Target
	case QuarterQ4:
		return t.Q4Target
	}
	return 0
}

// PIDSequence tracks the last assigned project code sequence per year.
// Codes are formatted P<2-digit year><4-digit sequence>, e.g. P250007.
type PIDSequence struct {
	ID           uint      `gorm:"primaryKey"`
	Year         int       `gorm:"not null;uniqueIndex"`
	LastSequence int       `gorm:"not null;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
