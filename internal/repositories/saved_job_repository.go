package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJobRepository interface {
	Save(savedJob *models.SavedJob) error
	Delete(userID, jobID string) error
	FindByUser(userID string) ([]models.SavedJob, error)
	Exists(userID, jobID string) (bool, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Save(savedJob *models.SavedJob) error {
	return r.db.Create(savedJob).Error
}

func (r *SavedJobRepositoryImpl) Delete(userID, jobID string) error {
	result := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) FindByUser(userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *SavedJobRepositoryImpl) Exists(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}
