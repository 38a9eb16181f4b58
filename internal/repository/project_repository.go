package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectFilters contains all filter options for listing projects.
// The dashboard relies on the year filter; the engine itself never
// re-validates that rows match (the query is authoritative).
type ProjectFilters struct {
	Year        *int
	Quarter     *domain.Quarter
	Category    *domain.ProjectCategory
	PIC         *string
	SearchQuery *string
}

// ProjectSortOption represents available sort options
type ProjectSortOption string

const (
	ProjectSortByCreatedDesc ProjectSortOption = "created_desc"
	ProjectSortByCreatedAsc  ProjectSortOption = "created_asc"
	ProjectSortByNettGPDesc  ProjectSortOption = "nett_gp_desc"
	ProjectSortByNettGPAsc   ProjectSortOption = "nett_gp_asc"
	ProjectSortByPIDAsc      ProjectSortOption = "pid_asc"
	ProjectSortByPIDDesc     ProjectSortOption = "pid_desc"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// CreateBatch inserts all projects in one transaction. Used by the bulk
// importer, which only ever commits a fully valid batch.
func (r *ProjectRepository) CreateBatch(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetByPID(ctx context.Context, pid string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Where("pid = ?", pid).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// PIDExists reports whether a project code is already taken
func (r *ProjectRepository) PIDExists(ctx context.Context, pid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Where("pid = ?", pid).
		Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filters *ProjectFilters, sortBy ProjectSortOption) ([]domain.Project, int64, error) {
	var projects []domain.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Project{})
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applySorting(query, sortBy)

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Find(&projects).Error

	return projects, total, err
}

// ListFiltered returns every project matching the filters without
// pagination. The aggregation engine and the exporter both consume full
// snapshots.
func (r *ProjectRepository) ListFiltered(ctx context.Context, filters *ProjectFilters) ([]domain.Project, error) {
	var projects []domain.Project
	query := r.db.WithContext(ctx).Model(&domain.Project{})
	query = r.applyFilters(query, filters)
	err := query.Order("created_at ASC").Find(&projects).Error
	return projects, err
}

// ListByYear returns the full snapshot for one year
func (r *ProjectRepository) ListByYear(ctx context.Context, year int) ([]domain.Project, error) {
	return r.ListFiltered(ctx, &ProjectFilters{Year: &year})
}

// MaxPIDSequence returns the highest numeric sequence embedded in the PIDs
// of the given year, considering only codes in the canonical P<yy><nnnn>
// format. Returns 0 when no such code exists.
func (r *ProjectRepository) MaxPIDSequence(ctx context.Context, year int) (int, error) {
	prefix := domain.PIDPrefix(year)

	var pids []string
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Where("pid LIKE ?", prefix+"%").
		Pluck("pid", &pids).Error
	if err != nil {
		return 0, err
	}

	max := 0
	for _, pid := range pids {
		if seq, ok := domain.ParsePIDSequence(pid, prefix); ok && seq > max {
			max = seq
		}
	}
	return max, nil
}

func (r *ProjectRepository) applyFilters(query *gorm.DB, filters *ProjectFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}
	if filters.Quarter != nil {
		query = query.Where("quarter = ?", *filters.Quarter)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.PIC != nil {
		query = query.Where("pic = ?", *filters.PIC)
	}
	if filters.SearchQuery != nil {
		pattern := "%" + *filters.SearchQuery + "%"
		query = query.Where(
			"pid LIKE ? OR business_partner LIKE ? OR end_user LIKE ? OR product LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

func (r *ProjectRepository) applySorting(query *gorm.DB, sortBy ProjectSortOption) *gorm.DB {
	switch sortBy {
	case ProjectSortByCreatedAsc:
		return query.Order("created_at ASC")
	case ProjectSortByNettGPDesc:
		return query.Order("nett_gp DESC")
	case ProjectSortByNettGPAsc:
		return query.Order("nett_gp ASC")
	case ProjectSortByPIDAsc:
		return query.Order("pid ASC")
	case ProjectSortByPIDDesc:
		return query.Order("pid DESC")
	default:
		return query.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
	}
}
