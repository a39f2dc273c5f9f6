// Package repotest содержит in-memory реализации репозиториев
// для юнит-тестов без живой БД.
package repotest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type UserRepo struct {
	users map[string]*models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*models.User)}
}

func (r *UserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, emailAddr) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *UserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *UserRepo) MarkEmailVerified(userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsEmailVerified = true
	return nil
}

func (r *UserRepo) Delete(userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type RefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func NewRefreshTokenRepo() *RefreshTokenRepo {
	return &RefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *RefreshTokenRepo) Create(token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *RefreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	record, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *RefreshTokenRepo) Revoke(token string) error {
	record, ok := r.tokens[token]
	if !ok {
		return nil
	}
	record.Revoked = true
	return nil
}

func (r *RefreshTokenRepo) RevokeAllForUser(userID string) error {
	for _, record := range r.tokens {
		if record.UserID == userID {
			record.Revoked = true
		}
	}
	return nil
}

func (r *RefreshTokenRepo) DeleteExpired() error {
	for key, record := range r.tokens {
		if time.Now().After(record.ExpiresAt) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type VerificationTokenRepo struct {
	tokens map[string]*models.VerificationToken
}

func NewVerificationTokenRepo() *VerificationTokenRepo {
	return &VerificationTokenRepo{tokens: make(map[string]*models.VerificationToken)}
}

func (r *VerificationTokenRepo) Create(token *models.VerificationToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	copied := *token
	r.tokens[token.ID] = &copied
	return nil
}

func (r *VerificationTokenRepo) FindByToken(token string, purpose models.TokenPurpose) (*models.VerificationToken, error) {
	for _, record := range r.tokens {
		if record.Token == token && record.Purpose == purpose {
			copied := *record
			return &copied, nil
		}
	}
	return nil, repositories.ErrVerificationTokenNotFound
}

func (r *VerificationTokenRepo) MarkUsed(id string) error {
	record, ok := r.tokens[id]
	if !ok || record.UsedAt != nil {
		return repositories.ErrVerificationTokenNotFound
	}
	now := time.Now()
	record.UsedAt = &now
	return nil
}

func (r *VerificationTokenRepo) DeleteForUser(userID string, purpose models.TokenPurpose) error {
	for id, record := range r.tokens {
		if record.UserID == userID && record.Purpose == purpose && record.UsedAt == nil {
			delete(r.tokens, id)
		}
	}
	return nil
}

// ActiveForUser возвращает невостребованные токены пользователя (для ассертов)
func (r *VerificationTokenRepo) ActiveForUser(userID string, purpose models.TokenPurpose) []*models.VerificationToken {
	var out []*models.VerificationToken
	for _, record := range r.tokens {
		if record.UserID == userID && record.Purpose == purpose && record.UsedAt == nil {
			out = append(out, record)
		}
	}
	return out
}

type CompanyRepo struct {
	companies map[string]*models.Company
}

func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *CompanyRepo) Create(company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *CompanyRepo) FindByID(id string) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *CompanyRepo) FindWithFilter(filter repositories.CompanyFilter) ([]models.Company, int64, error) {
	var out []models.Company
	for _, company := range r.companies {
		if filter.Search != "" && !strings.Contains(strings.ToLower(company.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Industry != "" && company.Industry != filter.Industry {
			continue
		}
		out = append(out, *company)
	}
	return out, int64(len(out)), nil
}

func (r *CompanyRepo) FindByOwner(ownerID string) ([]models.Company, error) {
	var out []models.Company
	for _, company := range r.companies {
		if company.OwnerID == ownerID {
			out = append(out, *company)
		}
	}
	return out, nil
}

func (r *CompanyRepo) Update(company *models.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *CompanyRepo) Delete(id string) error {
	if _, ok := r.companies[id]; !ok {
		return repositories.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

type JobRepo struct {
	jobs map[string]*models.Job
}

func NewJobRepo() *JobRepo {
	return &JobRepo{jobs: make(map[string]*models.Job)}
}

func (r *JobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *JobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *JobRepo) FindWithFilter(filter repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if filter.Search != "" && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.JobType != "" && job.JobType != filter.JobType {
			continue
		}
		if filter.CompanyID != "" && job.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (r *JobRepo) FindByCompany(companyID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.CompanyID == companyID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *JobRepo) FindByPoster(postedByID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.PostedByID == postedByID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *JobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *JobRepo) Delete(id string) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type ApplicationRepo struct {
	applications map[string]*models.Application
	jobs         *JobRepo
}

func NewApplicationRepo(jobs *JobRepo) *ApplicationRepo {
	return &ApplicationRepo{
		applications: make(map[string]*models.Application),
		jobs:         jobs,
	}
}

func (r *ApplicationRepo) Create(application *models.Application) error {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *ApplicationRepo) FindByID(id string) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	if job, err := r.jobs.FindByID(copied.JobID); err == nil {
		copied.Job = job
	}
	return &copied, nil
}

func (r *ApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *ApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *ApplicationRepo) ExistsForJobAndApplicant(jobID, applicantID string) (bool, error) {
	for _, application := range r.applications {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	application, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

func (r *ApplicationRepo) Delete(id string) error {
	if _, ok := r.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}

func (r *ApplicationRepo) CountByStatusForApplicant(applicantID string) (map[models.ApplicationStatus]int64, error) {
	counts := make(map[models.ApplicationStatus]int64)
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			counts[application.Status]++
		}
	}
	return counts, nil
}

func (r *ApplicationRepo) CountForJob(jobID string) (int64, error) {
	var count int64
	for _, application := range r.applications {
		if application.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *ApplicationRepo) FindRecentForPoster(postedByID string, limit int) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		job, err := r.jobs.FindByID(application.JobID)
		if err != nil {
			continue
		}
		if job.PostedByID == postedByID {
			out = append(out, *application)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type ProfileRepo struct {
	profiles map[string]*models.Profile // keyed by userID
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *ProfileRepo) Create(profile *models.Profile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *ProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *ProfileRepo) Update(profile *models.Profile) error {
	if _, ok := r.profiles[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *ProfileRepo) DeleteByUserID(userID string) error {
	if _, ok := r.profiles[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

type SavedJobRepo struct {
	saved map[string]*models.SavedJob // keyed by userID+"/"+jobID
}

func NewSavedJobRepo() *SavedJobRepo {
	return &SavedJobRepo{saved: make(map[string]*models.SavedJob)}
}

func (r *SavedJobRepo) Save(savedJob *models.SavedJob) error {
	if savedJob.ID == "" {
		savedJob.ID = uuid.NewString()
	}
	copied := *savedJob
	r.saved[savedJob.UserID+"/"+savedJob.JobID] = &copied
	return nil
}

func (r *SavedJobRepo) Delete(userID, jobID string) error {
	key := userID + "/" + jobID
	if _, ok := r.saved[key]; !ok {
		return repositories.ErrSavedJobNotFound
	}
	delete(r.saved, key)
	return nil
}

func (r *SavedJobRepo) FindByUser(userID string) ([]models.SavedJob, error) {
	var out []models.SavedJob
	for _, record := range r.saved {
		if record.UserID == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *SavedJobRepo) Exists(userID, jobID string) (bool, error) {
	_, ok := r.saved[userID+"/"+jobID]
	return ok, nil
}
