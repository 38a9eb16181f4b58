package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/service"
	"github.com/mitrasinergi/sales-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newProjectService(t *testing.T) (*service.ProjectService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	pidRepo := repository.NewPIDSequenceRepository(db)
	pidService := service.NewPIDService(pidRepo, projectRepo, zap.NewNop())
	return service.NewProjectService(projectRepo, pidService, zap.NewNop()), db
}

func createRequest() *domain.CreateProjectRequest {
	return &domain.CreateProjectRequest{
		BusinessPartner: "PT Mitra Abadi",
		EndUser:         "PT Pelanggan Jaya",
		Category:        "Implementation",
		Product:         "Core Banking",
		PIC:             "Andi",
		NettGP:          500,
		Quarter:         "Q1",
		Year:            2025,
	}
}

func TestProjectService_CreateAssignsPID(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "P250001", first.PID)

	second, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "P250002", second.PID)
}

func TestProjectService_CreateHonorsExplicitPID(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	req := createRequest()
	req.PID = "P259999"
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "P259999", created.PID)

	// Reusing the code is rejected
	dup := createRequest()
	dup.PID = "P259999"
	_, err = svc.Create(ctx, dup)
	require.ErrorIs(t, err, service.ErrDuplicatePID)
}

func TestProjectService_GetUpdateDelete(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PID, fetched.PID)

	newGP := int64(900)
	newPIC := "Budi"
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateProjectRequest{
		NettGP: &newGP,
		PIC:    &newPIC,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(900), updated.NettGP)
	assert.Equal(t, "Budi", updated.PIC)
	// Untouched fields survive a partial update
	assert.Equal(t, created.BusinessPartner, updated.BusinessPartner)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestProjectService_NotFound(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProjectService_ListPaginates(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, createRequest())
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2, nil, repository.ProjectSortByPIDAsc)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	dtos, ok := page.Data.([]domain.ProjectDTO)
	require.True(t, ok)
	assert.Len(t, dtos, 2)
}
