package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;index:idx_applications_job_applicant,unique" json:"job_id"`
	ApplicantID string            `gorm:"not null;index:idx_applications_job_applicant,unique" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CoverLetter string            `json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

// SavedJob - закладка соискателя на вакансию
type SavedJob struct {
	BaseModel
	UserID string `gorm:"not null;index:idx_saved_jobs_user_job,unique" json:"user_id"`
	JobID  string `gorm:"not null;index:idx_saved_jobs_user_job,unique" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
