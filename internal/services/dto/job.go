package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateJobRequest - запрос создания вакансии
type CreateJobRequest struct {
	CompanyID   string         `json:"companyId" binding:"required,uuid"`
	Title       string         `json:"title" binding:"required,min=3,max=200"`
	Description string         `json:"description" binding:"required"`
	Location    string         `json:"location,omitempty"`
	JobType     models.JobType `json:"jobType" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE" validate:"is-job-type"`
	SalaryMin   float64        `json:"salaryMin,omitempty" binding:"omitempty,min=0"`
	SalaryMax   float64        `json:"salaryMax,omitempty" binding:"omitempty,min=0,gtefield=SalaryMin"`
	Skills      []string       `json:"skills,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
}

// UpdateJobRequest - запрос обновления вакансии (частичный)
type UpdateJobRequest struct {
	Title       *string           `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Description *string           `json:"description,omitempty"`
	Location    *string           `json:"location,omitempty"`
	JobType     *models.JobType   `json:"jobType,omitempty" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	SalaryMin   *float64          `json:"salaryMin,omitempty" binding:"omitempty,min=0"`
	SalaryMax   *float64          `json:"salaryMax,omitempty" binding:"omitempty,min=0"`
	Skills      []string          `json:"skills,omitempty"`
	Status      *models.JobStatus `json:"status,omitempty" binding:"omitempty,oneof=OPEN CLOSED" validate:"omitempty,is-job-status"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
}

// JobListQuery - параметры фильтрации списка вакансий
type JobListQuery struct {
	Search    string `form:"search"`
	Location  string `form:"location"`
	JobType   string `form:"job_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	CompanyID string `form:"company_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// JobListResponse - страница списка вакансий
type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}
