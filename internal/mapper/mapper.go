package mapper

import (
	"github.com/mitrasinergi/sales-api/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

// ToProjectDTO converts a Project to its API representation
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	return domain.ProjectDTO{
		ID:              project.ID,
		PID:             project.PID,
		BusinessPartner: project.BusinessPartner,
		EndUser:         project.EndUser,
		Category:        project.Category,
		Product:         project.Product,
		PIC:             project.PIC,
		NettGP:          project.NettGP,
		Quarter:         project.Quarter,
		Year:            project.Year,
		Keterangan:      project.Keterangan,
		CreatedAt:       project.CreatedAt.Format(timeLayout),
		UpdatedAt:       project.UpdatedAt.Format(timeLayout),
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []domain.Project) []domain.ProjectDTO {
	dtos := make([]domain.ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = ToProjectDTO(&projects[i])
	}
	return dtos
}

// ToIncomeTargetDTO converts an IncomeTarget to its API representation
func ToIncomeTargetDTO(target *domain.IncomeTarget) domain.IncomeTargetDTO {
	return domain.IncomeTargetDTO{
		Year:         target.Year,
		Q1Target:     target.Q1Target,
		Q2Target:     target.Q2Target,
		Q3Target:     target.Q3Target,
		Q4Target:     target.Q4Target,
		YearlyTarget: target.YearlyTarget,
		UpdatedAt:    target.UpdatedAt.Format(timeLayout),
	}
}
