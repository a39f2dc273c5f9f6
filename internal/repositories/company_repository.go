package repositories

import (
	"errors"
	"strings"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyFilter struct {
	Search   string
	Industry string
	Location string
	Page     int
	PageSize int
}

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id string) (*models.Company, error)
	FindWithFilter(filter CompanyFilter) ([]models.Company, int64, error)
	FindByOwner(ownerID string) ([]models.Company, error)
	Update(company *models.Company) error
	Delete(id string) error
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindWithFilter(filter CompanyFilter) ([]models.Company, int64, error) {
	query := r.db.Model(&models.Company{})

	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []models.Company
	err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&companies).Error

	return companies, total, err
}

func (r *CompanyRepositoryImpl) FindByOwner(ownerID string) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) Update(company *models.Company) error {
	result := r.db.Model(company).Updates(map[string]interface{}{
		"name":        company.Name,
		"description": company.Description,
		"industry":    company.Industry,
		"website":     company.Website,
		"location":    company.Location,
		"size":        company.Size,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
