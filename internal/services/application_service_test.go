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

type applicationFixture struct {
	svc     ApplicationService
	jobRepo *repotest.JobRepo
	appRepo *repotest.ApplicationRepo
	job     *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	jobRepo := repotest.NewJobRepo()
	appRepo := repotest.NewApplicationRepo(jobRepo)

	job := &models.Job{
		CompanyID:  "company-1",
		PostedByID: "employer-1",
		Title:      "Go developer",
		JobType:    models.JobTypeFullTime,
		Status:     models.JobStatusOpen,
	}
	require.NoError(t, jobRepo.Create(job))

	return &applicationFixture{
		svc:     NewApplicationService(appRepo, jobRepo),
		jobRepo: jobRepo,
		appRepo: appRepo,
		job:     job,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{CoverLetter: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, "seeker-1", application.ApplicantID)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplicationService_Apply_MissingJob(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply("seeker-1", "missing", &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplicationService_Apply_ClosedJob(t *testing.T) {
	f := newApplicationFixture(t)

	f.job.Status = models.JobStatusClosed
	require.NoError(t, f.jobRepo.Update(f.job))

	_, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrJobClosed)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Автор вакансии меняет статус
	updated, err := f.svc.UpdateStatus(application.ID, "employer-1", models.ApplicationStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Status)

	// Другой работодатель - 403
	_, err = f.svc.UpdateStatus(application.ID, "employer-2", models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	// Несуществующий отклик - 404
	_, err = f.svc.UpdateStatus("missing", "employer-1", models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestApplicationService_Withdraw(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Чужой отклик отозвать нельзя
	_, err = f.svc.Withdraw(application.ID, "seeker-2")
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	withdrawn, err := f.svc.Withdraw(application.ID, "seeker-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, withdrawn.Status)

	// Повторный отзыв - тихий успех
	again, err := f.svc.Withdraw(application.ID, "seeker-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, again.Status)

	// Отозванный отклик больше не меняет статус
	_, err = f.svc.UpdateStatus(application.ID, "employer-1", models.ApplicationStatusReviewing)
	require.Error(t, err)
}

func TestApplicationService_GetByID_Access(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Кандидат видит свой отклик
	_, err = f.svc.GetByID(application.ID, "seeker-1")
	require.NoError(t, err)

	// Автор вакансии видит отклик
	_, err = f.svc.GetByID(application.ID, "employer-1")
	require.NoError(t, err)

	// Посторонний - 403
	_, err = f.svc.GetByID(application.ID, "stranger")
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)
}

func TestApplicationService_ListByJob(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	applications, err := f.svc.ListByJob(f.job.ID, "employer-1")
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	// Чужой работодатель - 403
	_, err = f.svc.ListByJob(f.job.ID, "employer-2")
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	// Несуществующая вакансия - 404
	_, err = f.svc.ListByJob("missing", "employer-1")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplicationService_ListByApplicant_EmptySlice(t *testing.T) {
	f := newApplicationFixture(t)

	applications, err := f.svc.ListByApplicant("seeker-1")
	require.NoError(t, err)
	assert.NotNil(t, applications)
	assert.Empty(t, applications)
}

func TestApplicationService_Delete(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.Apply("seeker-1", f.job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(application.ID, "employer-1"), apperrors.ErrNotResourceOwner)
	require.NoError(t, f.svc.Delete(application.ID, "seeker-1"))

	_, err = f.svc.GetByID(application.ID, "seeker-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
