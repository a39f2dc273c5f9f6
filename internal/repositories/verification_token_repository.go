package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVerificationTokenNotFound = errors.New("verification token not found")

type VerificationTokenRepository interface {
	Create(token *models.VerificationToken) error
	FindByToken(token string, purpose models.TokenPurpose) (*models.VerificationToken, error)
	MarkUsed(id string) error
	DeleteForUser(userID string, purpose models.TokenPurpose) error
}

type VerificationTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &VerificationTokenRepositoryImpl{db: db}
}

func (r *VerificationTokenRepositoryImpl) Create(token *models.VerificationToken) error {
	return r.db.Create(token).Error
}

func (r *VerificationTokenRepositoryImpl) FindByToken(token string, purpose models.TokenPurpose) (*models.VerificationToken, error) {
	var vt models.VerificationToken
	err := r.db.Where("token = ? AND purpose = ?", token, purpose).First(&vt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationTokenNotFound
		}
		return nil, err
	}
	return &vt, nil
}

// MarkUsed помечает одноразовый токен использованным
func (r *VerificationTokenRepositoryImpl) MarkUsed(id string) error {
	result := r.db.Model(&models.VerificationToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVerificationTokenNotFound
	}
	return nil
}

// DeleteForUser удаляет невостребованные токены пользователя данного назначения
// (перед выпуском нового, чтобы активным оставался ровно один)
func (r *VerificationTokenRepositoryImpl) DeleteForUser(userID string, purpose models.TokenPurpose) error {
	return r.db.Where("user_id = ? AND purpose = ? AND used_at IS NULL", userID, purpose).
		Delete(&models.VerificationToken{}).Error
}
