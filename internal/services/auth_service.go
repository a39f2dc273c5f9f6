package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// Сроки жизни одноразовых токенов
const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = 1 * time.Hour
)

// AuthService - регистрация, вход, подтверждение email, сброс пароля.
type AuthService interface {
	SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(req *dto.SignInRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	ResendVerification(emailAddr string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo              repositories.UserRepository
	verificationTokenRepo repositories.VerificationTokenRepository
	tokenService          TokenService
	emailProvider         email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	verificationTokenRepo repositories.VerificationTokenRepository,
	tokenService TokenService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:              userRepo,
		verificationTokenRepo: verificationTokenRepo,
		tokenService:          tokenService,
		emailProvider:         emailProvider,
	}
}

// SignUp регистрирует пользователя и сразу выдаёт пару токенов.
// Письмо с подтверждением уходит асинхронно, регистрацию не блокирует.
func (s *AuthServiceImpl) SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if req.Role != models.UserRoleEmployer && req.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	accessToken, refreshToken, err := s.tokenService.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.sendVerificationAsync(user)

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

// SignIn проверяет учётные данные. Несуществующий email и неверный
// пароль дают одинаковый ответ, чтобы не раскрывать наличие аккаунта.
func (s *AuthServiceImpl) SignIn(req *dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	accessToken, refreshToken, err := s.tokenService.IssuePair(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	accessToken, newRefreshToken, err := s.tokenService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.tokenService.Revoke(refreshToken)
}

// VerifyEmail подтверждает email по одноразовому токену.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	vt, err := s.verificationTokenRepo.FindByToken(token, models.TokenPurposeVerifyEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
			return apperrors.ErrOneTimeTokenInvalid
		}
		return apperrors.InternalError(err)
	}

	if vt.UsedAt != nil {
		return apperrors.ErrTokenConsumed
	}
	if time.Now().After(vt.ExpiresAt) {
		return apperrors.ErrOneTimeTokenInvalid
	}

	if err := s.verificationTokenRepo.MarkUsed(vt.ID); err != nil {
		if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
			return apperrors.ErrTokenConsumed
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.MarkEmailVerified(vt.UserID); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ResendVerification повторно отправляет письмо подтверждения.
// Для неизвестного или уже подтверждённого email отвечает успехом,
// не раскрывая состояние аккаунта.
func (s *AuthServiceImpl) ResendVerification(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if user.IsEmailVerified {
		return nil
	}

	s.sendVerificationAsync(user)
	return nil
}

// RequestPasswordReset выпускает токен сброса и отправляет письмо.
// Неизвестный email даёт тот же успешный ответ.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := s.issueOneTimeToken(user.ID, models.TokenPurposeResetPassword, passwordResetTokenTTL)
	if err != nil {
		return err
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(user.Email, token); err != nil {
			logger.WithError(err).Error("Failed to send password reset email", "user_id", user.ID)
		}
	}()

	return nil
}

// ResetPassword устанавливает новый пароль по одноразовому токену
// и отзывает все refresh-токены пользователя.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	vt, err := s.verificationTokenRepo.FindByToken(token, models.TokenPurposeResetPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
			return apperrors.ErrOneTimeTokenInvalid
		}
		return apperrors.InternalError(err)
	}

	if vt.UsedAt != nil {
		return apperrors.ErrTokenConsumed
	}
	if time.Now().After(vt.ExpiresAt) {
		return apperrors.ErrOneTimeTokenInvalid
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.verificationTokenRepo.MarkUsed(vt.ID); err != nil {
		if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
			return apperrors.ErrTokenConsumed
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(vt.UserID, passwordHash); err != nil {
		return apperrors.InternalError(err)
	}

	// Смена пароля завершает все активные сессии
	if err := s.tokenService.RevokeAllForUser(vt.UserID); err != nil {
		logger.WithError(err).Error("Failed to revoke sessions after password reset", "user_id", vt.UserID)
	}

	return nil
}

// issueOneTimeToken выпускает одноразовый токен, заменяя прежние
// невостребованные токены того же назначения.
func (s *AuthServiceImpl) issueOneTimeToken(userID string, purpose models.TokenPurpose, ttl time.Duration) (string, error) {
	if err := s.verificationTokenRepo.DeleteForUser(userID, purpose); err != nil {
		return "", apperrors.InternalError(err)
	}

	token, err := auth.GenerateOpaqueToken()
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	vt := &models.VerificationToken{
		UserID:    userID,
		Token:     token,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.verificationTokenRepo.Create(vt); err != nil {
		return "", apperrors.InternalError(err)
	}

	return token, nil
}

func (s *AuthServiceImpl) sendVerificationAsync(user *models.User) {
	token, err := s.issueOneTimeToken(user.ID, models.TokenPurposeVerifyEmail, verificationTokenTTL)
	if err != nil {
		logger.WithError(err).Error("Failed to issue verification token", "user_id", user.ID)
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(user.Email, token); err != nil {
			logger.WithError(err).Error("Failed to send verification email", "user_id", user.ID)
		}
	}()
}
