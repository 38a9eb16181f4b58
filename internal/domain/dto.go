package domain

import "github.com/google/uuid"

// CreateProjectRequest is the payload for registering a new project.
// PID may be left blank; the server assigns the next code for the year.
type CreateProjectRequest struct {
	PID             string `json:"pid" validate:"omitempty,max=20"`
	BusinessPartner string `json:"businessPartner" validate:"required,max=200"`
	EndUser         string `json:"endUser" validate:"required,max=200"`
	Category        string `json:"category" validate:"required,oneof=Implementation Maintenance LSC"`
	Product         string `json:"product" validate:"omitempty,max=200"`
	PIC             string `json:"pic" validate:"required,max=100"`
	NettGP          int64  `json:"nettGp" validate:"required,gt=0"`
	Quarter         string `json:"quarter" validate:"required,oneof=Q1 Q2 Q3 Q4"`
	Year            int    `json:"year" validate:"required,gte=2000,lte=2100"`
	Keterangan      string `json:"keterangan" validate:"omitempty"`
}

// UpdateProjectRequest carries partial updates; nil fields are left untouched.
type UpdateProjectRequest struct {
	BusinessPartner *string `json:"businessPartner" validate:"omitempty,max=200"`
	EndUser         *string `json:"endUser" validate:"omitempty,max=200"`
	Category        *string `json:"category" validate:"omitempty,oneof=Implementation Maintenance LSC"`
	Product         *string `json:"product" validate:"omitempty,max=200"`
	PIC             *string `json:"pic" validate:"omitempty,max=100"`
	NettGP          *int64  `json:"nettGp" validate:"omitempty"`
	Quarter         *string `json:"quarter" validate:"omitempty,oneof=Q1 Q2 Q3 Q4"`
	Year            *int    `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	Keterangan      *string `json:"keterangan" validate:"omitempty"`
}

// UpsertTargetRequest sets the income targets for one year.
type UpsertTargetRequest struct {
	Q1Target     int64 `json:"q1Target" validate:"gte=0"`
	Q2Target     int64 `json:"q2Target" validate:"gte=0"`
	Q3Target     int64 `json:"q3Target" validate:"gte=0"`
	Q4Target     int64 `json:"q4Target" validate:"gte=0"`
	YearlyTarget int64 `json:"yearlyTarget" validate:"required,gt=0"`
}

// ProjectDTO is the API representation of a project
type ProjectDTO struct {
	ID              uuid.UUID       `json:"id"`
	PID             string          `json:"pid"`
	BusinessPartner string          `json:"businessPartner"`
	EndUser         string          `json:"endUser"`
	Category        ProjectCategory `json:"category"`
	Product         string          `json:"product,omitempty"`
	PIC             string          `json:"pic"`
	NettGP          int64           `json:"nettGp"`
	Quarter         Quarter         `json:"quarter"`
	Year            int             `json:"year"`
	Keterangan      string          `json:"keterangan,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// IncomeTargetDTO is the API representation of a yearly target
type IncomeTargetDTO struct {
	Year         int    `json:"year"`
	Q1Target     int64  `json:"q1Target"`
	Q2Target     int64  `json:"q2Target"`
	Q3Target     int64  `json:"q3Target"`
	Q4Target     int64  `json:"q4Target"`
	YearlyTarget int64  `json:"yearlyTarget"`
	UpdatedAt    string `json:"updatedAt"`
}

// QuarterSummary pairs a quarter's realized income with its target.
type QuarterSummary struct {
	Quarter Quarter `json:"quarter"`
	Income  int64   `json:"income"`
	Target  int64   `json:"target"`
}

// CategorySlice is one wedge of the category breakdown.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DashboardStats is the derived yearly overview. The quarterly, category,
// PIC and product breakdowns each partition the same record set, so their
// sums all equal TotalIncome.
type DashboardStats struct {
	Year               int              `json:"year"`
	TotalIncome        int64            `json:"totalIncome"`
	Target             int64            `json:"target"`
	AchievementPercent float64          `json:"achievementPercent"`
	Gap                int64            `json:"gap"`
	QuarterlyBreakdown []QuarterSummary `json:"quarterlyBreakdown"`
	CategoryBreakdown  []CategorySlice  `json:"categoryBreakdown"`
}

// PICRanking is one leaderboard row for a person-in-charge.
type PICRanking struct {
	PIC          string `json:"pic"`
	TotalIncome  int64  `json:"totalIncome"`
	ProjectCount int    `json:"projectCount"`
}

// PICContribution is a PIC's share within a single product's income.
type PICContribution struct {
	PIC    string `json:"pic"`
	Income int64  `json:"income"`
}

// ProductRanking is one leaderboard row for a product, with its top
// contributors broken out per PIC.
type ProductRanking struct {
	Product      string            `json:"product"`
	TotalIncome  int64             `json:"totalIncome"`
	ProjectCount int               `json:"projectCount"`
	Contributors []PICContribution `json:"contributors"`
}

// InsightResponse wraps the narrative commentary for a year's stats.
type InsightResponse struct {
	Year       int            `json:"year"`
	Commentary string         `json:"commentary"`
	Generated  bool           `json:"generated"`
	Stats      DashboardStats `json:"stats"`
}

// ImportResult reports the outcome of a bulk import. A batch either imports
// completely (Imported > 0, no errors) or is rejected whole with the full
// per-row error list.
type ImportResult struct {
	Imported int      `json:"imported"`
	Rejected bool     `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// PaginatedResponse wraps list results with paging metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
}
