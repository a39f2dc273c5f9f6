package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// testEnv поднимает полный HTTP-стек на in-memory репозиториях:
// реальные сервисы, реальные обработчики, реальный роутинг.
type testEnv struct {
	router           *gin.Engine
	userRepo         *repotest.UserRepo
	refreshTokenRepo *repotest.RefreshTokenRepo
	verificationRepo *repotest.VerificationTokenRepo
	companyRepo      *repotest.CompanyRepo
	jobRepo          *repotest.JobRepo
	applicationRepo  *repotest.ApplicationRepo
	profileRepo      *repotest.ProfileRepo
	savedJobRepo     *repotest.SavedJobRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		userRepo:         repotest.NewUserRepo(),
		refreshTokenRepo: repotest.NewRefreshTokenRepo(),
		verificationRepo: repotest.NewVerificationTokenRepo(),
		companyRepo:      repotest.NewCompanyRepo(),
		jobRepo:          repotest.NewJobRepo(),
		profileRepo:      repotest.NewProfileRepo(),
		savedJobRepo:     repotest.NewSavedJobRepo(),
	}
	env.applicationRepo = repotest.NewApplicationRepo(env.jobRepo)

	jwtManager := auth.NewJWTManager("handler-test-secret", 15*time.Minute)
	tokenService := services.NewTokenService(jwtManager, env.refreshTokenRepo, env.userRepo, 7*24*time.Hour)
	authService := services.NewAuthService(env.userRepo, env.verificationRepo, tokenService, email.NewLogProvider())

	sc := &services.ServiceContainer{
		TokenService:       tokenService,
		AuthService:        authService,
		CompanyService:     services.NewCompanyService(env.companyRepo, env.jobRepo),
		JobService:         services.NewJobService(env.jobRepo, env.companyRepo, env.savedJobRepo),
		ApplicationService: services.NewApplicationService(env.applicationRepo, env.jobRepo),
		ProfileService:     services.NewProfileService(env.profileRepo),
		DashboardService: services.NewDashboardService(
			env.profileRepo, env.applicationRepo, env.savedJobRepo, env.companyRepo, env.jobRepo),
	}

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService, jwtManager),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, sc.CompanyService, jwtManager),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService, jwtManager),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService, jwtManager),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, sc.ProfileService, jwtManager),
		DashboardHandler:   handlers.NewDashboardHandler(baseHandler, sc.DashboardService, jwtManager),
	}

	env.router = gin.New()
	routes.SetupRoutes(env.router, appHandlers)
	return env
}

// envelope - общий конверт ответа API
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
			"body is not a JSON envelope: %s", rec.Body.String())
	}
	return rec, &env
}

func decodeData(t *testing.T, env *envelope, out interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type authTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID              string `json:"id"`
		Email           string `json:"email"`
		Role            string `json:"role"`
		IsEmailVerified bool   `json:"isEmailVerified"`
	} `json:"user"`
}

// signUpVerified регистрирует пользователя, подтверждает почту по токену
// из репозитория и входит заново. Возвращает рабочую пару токенов.
func (e *testEnv) signUpVerified(t *testing.T, emailAddr, password string, role models.UserRole) *authTokens {
	t.Helper()

	rec, env := e.do(t, http.MethodPost, "/api/auth/signUp", "", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"email":     emailAddr,
		"password":  password,
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var signedUp authTokens
	decodeData(t, env, &signedUp)

	pending := e.verificationRepo.ActiveForUser(signedUp.User.ID, models.TokenPurposeVerifyEmail)
	require.Len(t, pending, 1)

	rec, _ = e.do(t, http.MethodGet, "/api/auth/verify-email/"+pending[0].Token, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = e.do(t, http.MethodPost, "/api/auth/signIn", "", gin.H{
		"email":    emailAddr,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens authTokens
	decodeData(t, env, &tokens)
	return &tokens
}

// createCompany создаёт компанию от имени работодателя и возвращает её ID.
func (e *testEnv) createCompany(t *testing.T, accessToken, name string) string {
	t.Helper()

	rec, env := e.do(t, http.MethodPost, "/api/companies", accessToken, gin.H{
		"name":     name,
		"industry": "IT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var company struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &company)
	return company.ID
}

// createJob публикует вакансию и возвращает её ID.
func (e *testEnv) createJob(t *testing.T, accessToken, companyID, title string) string {
	t.Helper()

	rec, env := e.do(t, http.MethodPost, "/api/jobs", accessToken, gin.H{
		"companyId":   companyID,
		"title":       title,
		"description": "We are hiring",
		"jobType":     "FULL_TIME",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var job struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &job)
	return job.ID
}
