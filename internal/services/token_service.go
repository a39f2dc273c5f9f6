package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// TokenService управляет access/refresh токенами.
// Access-токен — JWT, refresh-токен — непрозрачная строка в БД.
type TokenService interface {
	IssueAccessToken(userID string, role models.UserRole) (string, time.Time, error)
	IssuePair(user *models.User) (accessToken, refreshToken string, err error)
	Refresh(refreshToken string) (accessToken, newRefreshToken string, err error)
	Revoke(refreshToken string) error
	RevokeAllForUser(userID string) error
	CleanupExpired() error
}

type TokenServiceImpl struct {
	jwtManager       *auth.JWTManager
	refreshTokenRepo repositories.RefreshTokenRepository
	userRepo         repositories.UserRepository
	refreshTTL       time.Duration
}

func NewTokenService(
	jwtManager *auth.JWTManager,
	refreshTokenRepo repositories.RefreshTokenRepository,
	userRepo repositories.UserRepository,
	refreshTTL time.Duration,
) TokenService {
	return &TokenServiceImpl{
		jwtManager:       jwtManager,
		refreshTokenRepo: refreshTokenRepo,
		userRepo:         userRepo,
		refreshTTL:       refreshTTL,
	}
}

func (s *TokenServiceImpl) IssueAccessToken(userID string, role models.UserRole) (string, time.Time, error) {
	token, expiresAt, err := s.jwtManager.GenerateAccessToken(userID, role)
	if err != nil {
		return "", time.Time{}, apperrors.InternalError(err)
	}
	return token, expiresAt, nil
}

// IssuePair выдаёт новую пару access+refresh для пользователя.
func (s *TokenServiceImpl) IssuePair(user *models.User) (string, string, error) {
	accessToken, _, err := s.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := auth.GenerateOpaqueToken()
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return "", "", apperrors.InternalError(err)
	}

	return accessToken, refreshToken, nil
}

// Refresh проверяет refresh-токен и выдаёт новую пару.
// Старый токен отзывается (ротация): повторное использование невозможно.
func (s *TokenServiceImpl) Refresh(refreshToken string) (string, string, error) {
	record, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return "", "", apperrors.ErrInvalidToken
		}
		return "", "", apperrors.InternalError(err)
	}

	if record.Revoked || time.Now().After(record.ExpiresAt) {
		return "", "", apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(record.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", "", apperrors.ErrInvalidToken
		}
		return "", "", apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.Revoke(refreshToken); err != nil {
		return "", "", apperrors.InternalError(err)
	}

	return s.IssuePair(user)
}

// Revoke отзывает refresh-токен. Неизвестный или уже отозванный
// токен — не ошибка: logout идемпотентен.
func (s *TokenServiceImpl) Revoke(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.Revoke(refreshToken); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TokenServiceImpl) RevokeAllForUser(userID string) error {
	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TokenServiceImpl) CleanupExpired() error {
	if err := s.refreshTokenRepo.DeleteExpired(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
