package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func newCompanyFixture(t *testing.T) (CompanyService, *repotest.CompanyRepo, *repotest.JobRepo) {
	t.Helper()
	companyRepo := repotest.NewCompanyRepo()
	jobRepo := repotest.NewJobRepo()
	return NewCompanyService(companyRepo, jobRepo), companyRepo, jobRepo
}

func TestCompanyService_CreateAndGet(t *testing.T) {
	svc, _, _ := newCompanyFixture(t)

	company, err := svc.Create("owner-1", &dto.CreateCompanyRequest{
		Name:     "Acme",
		Industry: "software",
	})
	require.NoError(t, err)
	require.NotEmpty(t, company.ID)
	assert.Equal(t, "owner-1", company.OwnerID)

	found, err := svc.GetByID(company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newCompanyFixture(t)

	_, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCompanyService_List_EmptySlice(t *testing.T) {
	svc, _, _ := newCompanyFixture(t)

	companies, total, err := svc.List(&dto.CompanyListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
	assert.Zero(t, total)
}

func TestCompanyService_Update_OwnershipGuard(t *testing.T) {
	svc, _, _ := newCompanyFixture(t)

	company, err := svc.Create("owner-1", &dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	newName := "Acme Renamed"

	// Чужой пользователь - 403
	_, err = svc.Update(company.ID, "intruder", &dto.UpdateCompanyRequest{Name: &newName})
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	// Несуществующая компания - 404 важнее 403
	_, err = svc.Update("missing", "intruder", &dto.UpdateCompanyRequest{Name: &newName})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	// Владелец обновляет
	updated, err := svc.Update(company.ID, "owner-1", &dto.UpdateCompanyRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", updated.Name)
}

func TestCompanyService_Delete_CascadesJobs(t *testing.T) {
	svc, _, jobRepo := newCompanyFixture(t)

	company, err := svc.Create("owner-1", &dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	job := &models.Job{
		CompanyID:  company.ID,
		PostedByID: "owner-1",
		Title:      "Go developer",
		JobType:    models.JobTypeFullTime,
		Status:     models.JobStatusOpen,
	}
	require.NoError(t, jobRepo.Create(job))

	require.NoError(t, svc.Delete(company.ID, "owner-1"))

	_, err = svc.GetByID(company.ID)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	jobs, err := jobRepo.FindByCompany(company.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestCompanyService_Delete_NonOwner(t *testing.T) {
	svc, _, _ := newCompanyFixture(t)

	company, err := svc.Create("owner-1", &dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	err = svc.Delete(company.ID, "intruder")
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)
}
