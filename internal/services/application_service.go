package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// ApplicationService - отклики на вакансии. Кандидат подаёт и отзывает
// свой отклик, работодатель-автор вакансии видит отклики и меняет статус.
type ApplicationService interface {
	Apply(applicantID, jobID string, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(id, userID string) (*models.Application, error)
	ListByApplicant(applicantID string) ([]models.Application, error)
	ListByJob(jobID, userID string) ([]models.Application, error)
	UpdateStatus(id, userID string, status models.ApplicationStatus) (*models.Application, error)
	Withdraw(id, userID string) (*models.Application, error)
	Delete(id, userID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply создаёт отклик. Повторный отклик на ту же вакансию - конфликт,
// отклик на закрытую вакансию не принимается.
func (s *ApplicationServiceImpl) Apply(applicantID, jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobClosed
	}

	exists, err := s.applicationRepo.ExistsForJobAndApplicant(jobID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Job = job
	return application, nil
}

// GetByID возвращает отклик кандидату-автору или работодателю-автору вакансии.
func (s *ApplicationServiceImpl) GetByID(id, userID string) (*models.Application, error) {
	application, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if application.ApplicantID != userID && !s.isJobOwner(application, userID) {
		return nil, apperrors.ErrNotResourceOwner
	}

	return application, nil
}

func (s *ApplicationServiceImpl) ListByApplicant(applicantID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applications == nil {
		applications = []models.Application{}
	}
	return applications, nil
}

// ListByJob возвращает отклики на вакансию её автору.
func (s *ApplicationServiceImpl) ListByJob(jobID, userID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.PostedByID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applications == nil {
		applications = []models.Application{}
	}
	return applications, nil
}

// UpdateStatus меняет статус отклика. Доступно только автору вакансии;
// отозванный кандидатом отклик больше не меняется.
func (s *ApplicationServiceImpl) UpdateStatus(id, userID string, status models.ApplicationStatus) (*models.Application, error) {
	application, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if !s.isJobOwner(application, userID) {
		return nil, apperrors.ErrNotResourceOwner
	}

	if application.Status == models.ApplicationStatusWithdrawn {
		return nil, apperrors.ErrInvalidStatus("application", "a withdrawn application cannot change status")
	}

	if err := s.applicationRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	return application, nil
}

// Withdraw переводит собственный отклик кандидата в WITHDRAWN. Идемпотентен.
func (s *ApplicationServiceImpl) Withdraw(id, userID string) (*models.Application, error) {
	application, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if application.ApplicantID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if application.Status == models.ApplicationStatusWithdrawn {
		return application, nil
	}

	if err := s.applicationRepo.UpdateStatus(id, models.ApplicationStatusWithdrawn); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = models.ApplicationStatusWithdrawn
	return application, nil
}

func (s *ApplicationServiceImpl) Delete(id, userID string) error {
	application, err := s.findByID(id)
	if err != nil {
		return err
	}

	if application.ApplicantID != userID {
		return apperrors.ErrNotResourceOwner
	}

	if err := s.applicationRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) findByID(id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// isJobOwner проверяет, что пользователь опубликовал вакансию отклика.
func (s *ApplicationServiceImpl) isJobOwner(application *models.Application, userID string) bool {
	job := application.Job
	if job == nil {
		loaded, err := s.jobRepo.FindByID(application.JobID)
		if err != nil {
			return false
		}
		job = loaded
	}
	return job.PostedByID == userID
}
