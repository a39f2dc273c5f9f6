package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobService - вакансии и избранное. Публиковать вакансию можно только
// в собственной компании; менять и удалять - только автор публикации.
type JobService interface {
	Create(userID string, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(id string) (*models.Job, error)
	List(query *dto.JobListQuery) (*dto.JobListResponse, error)
	ListByCompany(companyID string) ([]models.Job, error)
	Update(id, userID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(id, userID string) error

	SaveJob(userID, jobID string) error
	UnsaveJob(userID, jobID string) error
	ListSaved(userID string) ([]models.SavedJob, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	companyRepo  repositories.CompanyRepository
	savedJobRepo repositories.SavedJobRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	savedJobRepo repositories.SavedJobRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		companyRepo:  companyRepo,
		savedJobRepo: savedJobRepo,
	}
}

func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.FindByID(req.CompanyID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if company.OwnerID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}

	job := &models.Job{
		CompanyID:   req.CompanyID,
		PostedByID:  userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Status:      models.JobStatusOpen,
		Deadline:    req.Deadline,
	}
	job.SetSkills(req.Skills)

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Company = company
	return job, nil
}

func (s *JobServiceImpl) GetByID(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repositories.JobFilter{
		Search:    query.Search,
		Location:  query.Location,
		JobType:   models.JobType(query.JobType),
		CompanyID: query.CompanyID,
		Status:    models.JobStatus(query.Status),
		Page:      page,
		PageSize:  pageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return &dto.JobListResponse{
		Jobs:     jobs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *JobServiceImpl) ListByCompany(companyID string) ([]models.Job, error) {
	if _, err := s.companyRepo.FindByID(companyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *JobServiceImpl) Update(id, userID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Skills != nil {
		job.SetSkills(req.Skills)
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if job.SalaryMax > 0 && job.SalaryMax < job.SalaryMin {
		return nil, apperrors.ValidationError("salaryMax must be greater than or equal to salaryMin")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) Delete(id, userID string) error {
	job, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if job.PostedByID != userID {
		return apperrors.ErrNotResourceOwner
	}

	if err := s.jobRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// SaveJob добавляет вакансию в избранное. Повторное сохранение - не ошибка.
func (s *JobServiceImpl) SaveJob(userID, jobID string) error {
	if _, err := s.GetByID(jobID); err != nil {
		return err
	}

	exists, err := s.savedJobRepo.Exists(userID, jobID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return nil
	}

	if err := s.savedJobRepo.Save(&models.SavedJob{UserID: userID, JobID: jobID}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UnsaveJob убирает вакансию из избранного. Идемпотентна.
func (s *JobServiceImpl) UnsaveJob(userID, jobID string) error {
	if err := s.savedJobRepo.Delete(userID, jobID); err != nil {
		if errors.Is(err, repositories.ErrSavedJobNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListSaved(userID string) ([]models.SavedJob, error) {
	saved, err := s.savedJobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if saved == nil {
		saved = []models.SavedJob{}
	}
	return saved, nil
}
