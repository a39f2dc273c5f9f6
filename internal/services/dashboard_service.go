package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const recentApplicationsLimit = 10

// DashboardService собирает агрегированные сводки для обеих ролей.
type DashboardService interface {
	JobSeekerDashboard(userID string) (*dto.JobSeekerDashboard, error)
	EmployerDashboard(userID string) (*dto.EmployerDashboard, error)
}

type DashboardServiceImpl struct {
	profileRepo     repositories.ProfileRepository
	applicationRepo repositories.ApplicationRepository
	savedJobRepo    repositories.SavedJobRepository
	companyRepo     repositories.CompanyRepository
	jobRepo         repositories.JobRepository
}

func NewDashboardService(
	profileRepo repositories.ProfileRepository,
	applicationRepo repositories.ApplicationRepository,
	savedJobRepo repositories.SavedJobRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
) DashboardService {
	return &DashboardServiceImpl{
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		savedJobRepo:    savedJobRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
	}
}

// JobSeekerDashboard - профиль (может отсутствовать), отклики,
// избранные вакансии и счётчики по статусам.
func (s *DashboardServiceImpl) JobSeekerDashboard(userID string) (*dto.JobSeekerDashboard, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.FindByApplicant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applications == nil {
		applications = []models.Application{}
	}

	savedJobs, err := s.savedJobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if savedJobs == nil {
		savedJobs = []models.SavedJob{}
	}

	statusCounts, err := s.applicationRepo.CountByStatusForApplicant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if statusCounts == nil {
		statusCounts = map[models.ApplicationStatus]int64{}
	}

	return &dto.JobSeekerDashboard{
		Profile:      profile,
		Applications: applications,
		SavedJobs:    savedJobs,
		StatusCounts: statusCounts,
	}, nil
}

// EmployerDashboard - компании, вакансии с числом откликов
// и последние отклики на вакансии пользователя.
func (s *DashboardServiceImpl) EmployerDashboard(userID string) (*dto.EmployerDashboard, error) {
	companies, err := s.companyRepo.FindByOwner(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if companies == nil {
		companies = []models.Company{}
	}

	jobs, err := s.jobRepo.FindByPoster(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.EmployerJobSummary, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.applicationRepo.CountForJob(job.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		summaries = append(summaries, dto.EmployerJobSummary{
			Job:              job,
			ApplicationCount: count,
		})
	}

	recent, err := s.applicationRepo.FindRecentForPoster(userID, recentApplicationsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if recent == nil {
		recent = []models.Application{}
	}

	return &dto.EmployerDashboard{
		Companies:          companies,
		Jobs:               summaries,
		RecentApplications: recent,
	}, nil
}
