package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
)

func TestCompanyCRUD(t *testing.T) {
	env := newTestEnv(t)

	employer := env.signUpVerified(t, "owner@corp.com", "Sup3rSecret!", models.UserRoleEmployer)
	rival := env.signUpVerified(t, "rival@corp.com", "Sup3rSecret!", models.UserRoleEmployer)
	seeker := env.signUpVerified(t, "seeker@mail.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	// Создание компании закрыто для соискателей
	rec, _ := env.do(t, http.MethodPost, "/api/companies", seeker.AccessToken, gin.H{
		"name": "Sneaky Inc",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	companyID := env.createCompany(t, employer.AccessToken, "Acme")

	// Карточка компании публична
	rec, resp := env.do(t, http.MethodGet, "/api/companies/"+companyID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var company struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeData(t, resp, &company)
	assert.Equal(t, "Acme", company.Name)

	// Публичный список
	rec, resp = env.do(t, http.MethodGet, "/api/companies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Companies []struct {
			ID string `json:"id"`
		} `json:"companies"`
		Total int64 `json:"total"`
	}
	decodeData(t, resp, &listing)
	assert.EqualValues(t, 1, listing.Total)

	// Чужой работодатель компанию не редактирует и не удаляет
	rec, _ = env.do(t, http.MethodPut, "/api/companies/"+companyID, rival.AccessToken, gin.H{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodDelete, "/api/companies/"+companyID, rival.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Владелец редактирует
	rec, resp = env.do(t, http.MethodPut, "/api/companies/"+companyID, employer.AccessToken, gin.H{
		"name": "Acme Corp",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, resp, &company)
	assert.Equal(t, "Acme Corp", company.Name)

	// Свои компании
	rec, resp = env.do(t, http.MethodGet, "/api/companies/me", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var mine []struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &mine)
	require.Len(t, mine, 1)

	// Удаление каскадно убирает вакансии
	jobID := env.createJob(t, employer.AccessToken, companyID, "Go Developer")

	rec, _ = env.do(t, http.MethodDelete, "/api/companies/"+companyID, employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/companies/"+companyID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobListingAndSaved(t *testing.T) {
	env := newTestEnv(t)

	employer := env.signUpVerified(t, "owner@corp.com", "Sup3rSecret!", models.UserRoleEmployer)
	seeker := env.signUpVerified(t, "seeker@mail.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	companyID := env.createCompany(t, employer.AccessToken, "Acme")
	jobID := env.createJob(t, employer.AccessToken, companyID, "Go Developer")

	// Публичный список вакансий
	rec, resp := env.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listing struct {
		Jobs []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"jobs"`
		Total int64 `json:"total"`
	}
	decodeData(t, resp, &listing)
	require.Len(t, listing.Jobs, 1)
	assert.Equal(t, "Go Developer", listing.Jobs[0].Title)

	// Вакансии компании
	rec, resp = env.do(t, http.MethodGet, "/api/jobs/company/"+companyID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var companyJobs []struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &companyJobs)
	assert.Len(t, companyJobs, 1)

	// Сохранение вакансии в избранное
	rec, _ = env.do(t, http.MethodPost, "/api/jobs/"+jobID+"/save", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Повторное сохранение идемпотентно
	rec, _ = env.do(t, http.MethodPost, "/api/jobs/"+jobID+"/save", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = env.do(t, http.MethodGet, "/api/jobs/saved", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var saved []struct {
		JobID string `json:"job_id"`
	}
	decodeData(t, resp, &saved)
	require.Len(t, saved, 1)

	rec, _ = env.do(t, http.MethodDelete, "/api/jobs/"+jobID+"/save", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = env.do(t, http.MethodGet, "/api/jobs/saved", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, resp, &saved)
	assert.Empty(t, saved)

	// Работодателю избранное недоступно
	rec, _ = env.do(t, http.MethodGet, "/api/jobs/saved", employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJobCreate_ForeignCompany(t *testing.T) {
	env := newTestEnv(t)

	employer := env.signUpVerified(t, "owner@corp.com", "Sup3rSecret!", models.UserRoleEmployer)
	rival := env.signUpVerified(t, "rival@corp.com", "Sup3rSecret!", models.UserRoleEmployer)

	companyID := env.createCompany(t, employer.AccessToken, "Acme")

	rec, resp := env.do(t, http.MethodPost, "/api/jobs", rival.AccessToken, gin.H{
		"companyId":   companyID,
		"title":       "Fake posting",
		"description": "Not yours",
		"jobType":     "FULL_TIME",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, resp.Success)
}

func TestProfileLifecycle(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.signUpVerified(t, "seeker@mail.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	// Профиля ещё нет
	rec, _ := env.do(t, http.MethodGet, "/api/profiles/me", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/api/profiles/me", seeker.AccessToken, gin.H{
		"headline": "Go developer",
		"skills":   []string{"go", "postgres"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var profile struct {
		Headline string   `json:"headline"`
		Skills   []string `json:"skills"`
	}
	decodeData(t, resp, &profile)
	assert.Equal(t, "Go developer", profile.Headline)
	assert.Equal(t, []string{"go", "postgres"}, profile.Skills)

	// Повторное создание - конфликт
	rec, _ = env.do(t, http.MethodPost, "/api/profiles/me", seeker.AccessToken, gin.H{
		"headline": "Another",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Частичное обновление
	rec, resp = env.do(t, http.MethodPut, "/api/profiles/me", seeker.AccessToken, gin.H{
		"headline": "Senior Go developer",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, resp, &profile)
	assert.Equal(t, "Senior Go developer", profile.Headline)
	assert.Equal(t, []string{"go", "postgres"}, profile.Skills)

	rec, _ = env.do(t, http.MethodDelete, "/api/profiles/me", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/profiles/me", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboards(t *testing.T) {
	env := newTestEnv(t)

	employer := env.signUpVerified(t, "owner@corp.com", "Sup3rSecret!", models.UserRoleEmployer)
	seeker := env.signUpVerified(t, "seeker@mail.com", "Sup3rSecret!", models.UserRoleJobSeeker)

	companyID := env.createCompany(t, employer.AccessToken, "Acme")
	jobID := env.createJob(t, employer.AccessToken, companyID, "Go Developer")

	rec, _ := env.do(t, http.MethodPost, "/api/jobs/"+jobID+"/apply", seeker.AccessToken, gin.H{})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodGet, "/api/dashboard/jobseeker", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var seekerBoard struct {
		Applications []struct {
			ID string `json:"id"`
		} `json:"applications"`
		StatusCounts map[string]int64 `json:"statusCounts"`
	}
	decodeData(t, resp, &seekerBoard)
	assert.Len(t, seekerBoard.Applications, 1)
	assert.EqualValues(t, 1, seekerBoard.StatusCounts["PENDING"])

	rec, resp = env.do(t, http.MethodGet, "/api/dashboard/employer", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var employerBoard struct {
		Companies []struct {
			ID string `json:"id"`
		} `json:"companies"`
		Jobs []struct {
			ApplicationCount int64 `json:"applicationCount"`
		} `json:"jobs"`
		RecentApplications []struct {
			ID string `json:"id"`
		} `json:"recentApplications"`
	}
	decodeData(t, resp, &employerBoard)
	require.Len(t, employerBoard.Companies, 1)
	require.Len(t, employerBoard.Jobs, 1)
	assert.EqualValues(t, 1, employerBoard.Jobs[0].ApplicationCount)
	assert.Len(t, employerBoard.RecentApplications, 1)

	// Дашборды закрыты для чужой роли
	rec, _ = env.do(t, http.MethodGet, "/api/dashboard/employer", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/dashboard/jobseeker", employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
