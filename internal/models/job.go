package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyID   string         `gorm:"not null;index" json:"company_id"`
	PostedByID  string         `gorm:"not null;index" json:"posted_by_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Location    string         `json:"location"`
	JobType     JobType        `gorm:"type:varchar(20);not null" json:"job_type"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"` // ["go", "postgres"]
	Status      JobStatus      `gorm:"type:varchar(20);default:'OPEN'" json:"status"`
	Deadline    *time.Time     `json:"deadline,omitempty"`

	// Relations
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

// GetSkills возвращает навыки вакансии как slice строк
func (j *Job) GetSkills() []string {
	var skills []string
	if len(j.Skills) > 0 {
		_ = json.Unmarshal(j.Skills, &skills)
	}
	return skills
}

// SetSkills устанавливает навыки вакансии
func (j *Job) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	j.Skills = datatypes.JSON(data)
}
