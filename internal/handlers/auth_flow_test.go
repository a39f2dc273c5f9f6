package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
)

func TestSignUpVerifySignInFlow(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/signUp", "", gin.H{
		"firstName": "Aida",
		"lastName":  "Seitkali",
		"email":     "aida@example.com",
		"password":  "Sup3rSecret!",
		"role":      "JOBSEEKER",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, resp.Success)

	var signedUp authTokens
	decodeData(t, resp, &signedUp)
	assert.NotEmpty(t, signedUp.AccessToken)
	assert.NotEmpty(t, signedUp.RefreshToken)
	assert.False(t, signedUp.User.IsEmailVerified)

	// До подтверждения почты вход закрыт
	rec, resp = env.do(t, http.MethodPost, "/api/auth/signIn", "", gin.H{
		"email":    "aida@example.com",
		"password": "Sup3rSecret!",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	pending := env.verificationRepo.ActiveForUser(signedUp.User.ID, models.TokenPurposeVerifyEmail)
	require.Len(t, pending, 1)

	rec, resp = env.do(t, http.MethodGet, "/api/auth/verify-email/"+pending[0].Token, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = env.do(t, http.MethodPost, "/api/auth/signIn", "", gin.H{
		"email":    "aida@example.com",
		"password": "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens authTokens
	decodeData(t, resp, &tokens)
	assert.True(t, tokens.User.IsEmailVerified)

	// Токен верификации одноразовый
	rec, resp = env.do(t, http.MethodGet, "/api/auth/verify-email/"+pending[0].Token, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signUpVerified(t, "taken@example.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/signUp", "", gin.H{
		"firstName": "Another",
		"lastName":  "User",
		"email":     "taken@example.com",
		"password":  "Sup3rSecret!",
		"role":      "JOBSEEKER",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, resp.Success)
}

func TestSignUp_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/signUp", "", gin.H{
		"firstName": "No",
		"lastName":  "Email",
		"password":  "Sup3rSecret!",
		"role":      "JOBSEEKER",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestRefreshRotation(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.signUpVerified(t, "rotate@example.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var refreshed authTokens
	decodeData(t, resp, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)

	// Старый refresh-токен отозван ротацией
	rec, resp = env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)

	// Новый продолжает работать
	rec, _ = env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": refreshed.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.signUpVerified(t, "logout@example.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	// Без access-токена выход недоступен
	rec, _ := env.do(t, http.MethodPost, "/api/auth/logout", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/logout", tokens.AccessToken, gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	// Отозванный refresh-токен больше не обменивается
	rec, _ = env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Повторный выход с тем же токеном идемпотентен
	rec, _ = env.do(t, http.MethodPost, "/api/auth/logout", tokens.AccessToken, gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_WithoutBody(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.signUpVerified(t, "nobody@example.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	// Выход без тела запроса - успех: отзывать нечего
	rec, resp := env.do(t, http.MethodPost, "/api/auth/logout", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, resp.Success)

	// Сессия при этом не тронута
	rec, _ = env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Пустой JSON-объект равнозначен отсутствию тела
	rec, _ = env.do(t, http.MethodPost, "/api/auth/logout", tokens.AccessToken, gin.H{})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.signUpVerified(t, "reset@example.com", "OldPassw0rd!", models.UserRoleJobSeeker)

	rec, resp := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", gin.H{
		"email": "reset@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	// Для неизвестной почты ответ неотличим от успешного
	rec, _ = env.do(t, http.MethodPost, "/api/auth/forgot-password", "", gin.H{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	pending := env.verificationRepo.ActiveForUser(tokens.User.ID, models.TokenPurposeResetPassword)
	require.Len(t, pending, 1)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/reset-password", "", gin.H{
		"token":       pending[0].Token,
		"newPassword": "NewPassw0rd!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Старый пароль мёртв, сессии отозваны
	rec, _ = env.do(t, http.MethodPost, "/api/auth/signIn", "", gin.H{
		"email":    "reset@example.com",
		"password": "OldPassw0rd!",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{
		"refreshToken": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/signIn", "", gin.H{
		"email":    "reset@example.com",
		"password": "NewPassw0rd!",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Токен сброса одноразовый
	rec, _ = env.do(t, http.MethodPost, "/api/auth/reset-password", "", gin.H{
		"token":       pending[0].Token,
		"newPassword": "AnotherPass1!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
