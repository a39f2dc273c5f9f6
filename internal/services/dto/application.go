package dto

import "jobboard_backend/internal/models"

// ApplyRequest - запрос отклика на вакансию
type ApplyRequest struct {
	CoverLetter string `json:"coverLetter,omitempty" binding:"omitempty,max=5000"`
	ResumeURL   string `json:"resumeUrl,omitempty" binding:"omitempty,url"`
}

// UpdateApplicationStatusRequest - смена статуса отклика работодателем
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=PENDING REVIEWING INTERVIEW ACCEPTED REJECTED" validate:"is-application-status"`
}
