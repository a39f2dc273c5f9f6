package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// CompanyService - CRUD компаний. Изменять компанию может только её владелец.
type CompanyService interface {
	Create(ownerID string, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(id string) (*models.Company, error)
	List(query *dto.CompanyListQuery) ([]models.Company, int64, error)
	ListByOwner(ownerID string) ([]models.Company, error)
	Update(id, userID string, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(id, userID string) error
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	jobRepo     repositories.JobRepository
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
) CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func (s *CompanyServiceImpl) Create(ownerID string, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Website:     req.Website,
		Location:    req.Location,
		Size:        req.Size,
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return company, nil
}

func (s *CompanyServiceImpl) GetByID(id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) List(query *dto.CompanyListQuery) ([]models.Company, int64, error) {
	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repositories.CompanyFilter{
		Search:   query.Search,
		Industry: query.Industry,
		Location: query.Location,
		Page:     page,
		PageSize: pageSize,
	}

	companies, total, err := s.companyRepo.FindWithFilter(filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, total, nil
}

func (s *CompanyServiceImpl) ListByOwner(ownerID string) ([]models.Company, error) {
	companies, err := s.companyRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

func (s *CompanyServiceImpl) Update(id, userID string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Size != nil {
		company.Size = *req.Size
	}

	if err := s.companyRepo.Update(company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return company, nil
}

// Delete удаляет компанию вместе с её вакансиями.
func (s *CompanyServiceImpl) Delete(id, userID string) error {
	company, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if company.OwnerID != userID {
		return apperrors.ErrNotResourceOwner
	}

	jobs, err := s.jobRepo.FindByCompany(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	for _, job := range jobs {
		if err := s.jobRepo.Delete(job.ID); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := s.companyRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}
