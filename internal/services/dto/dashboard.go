package dto

import "jobboard_backend/internal/models"

// JobSeekerDashboard - агрегированные данные для дашборда соискателя
type JobSeekerDashboard struct {
	Profile      *models.Profile                    `json:"profile,omitempty"`
	Applications []models.Application               `json:"applications"`
	SavedJobs    []models.SavedJob                  `json:"savedJobs"`
	StatusCounts map[models.ApplicationStatus]int64 `json:"statusCounts"`
}

// EmployerJobSummary - вакансия с количеством откликов
type EmployerJobSummary struct {
	Job              models.Job `json:"job"`
	ApplicationCount int64      `json:"applicationCount"`
}

// EmployerDashboard - агрегированные данные для дашборда работодателя
type EmployerDashboard struct {
	Companies          []models.Company     `json:"companies"`
	Jobs               []EmployerJobSummary `json:"jobs"`
	RecentApplications []models.Application `json:"recentApplications"`
}
